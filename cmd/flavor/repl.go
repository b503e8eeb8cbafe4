package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/inconshreveable/log15"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/parser"
	"github.com/flavor-lang/flavor/internal/pipeline"
)

const replBanner = `Flavor REPL. Statements end with ';'. Type :quit to exit, :type <name> to inspect a global.`

var replCommand = cli.Command{
	Name:   "repl",
	Usage:  "Start an interactive session",
	Action: runRepl,
}

func runRepl(ctx *cli.Context) error {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := settings.Repl.History; path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := pipeline.NewSession(pipelineOptions(pipeline.WithLogger(log15.Root().New("file", "<repl>")))...)
	for {
		src, ok := readInput(ln, settings.Repl.Prompt, settings.Repl.Continuation)
		if !ok {
			fmt.Println()
			return nil
		}

		input := strings.TrimSpace(src)
		switch {
		case input == "":
			continue
		case input == ":quit":
			return nil
		case strings.HasPrefix(input, ":type "):
			name := strings.TrimSpace(strings.TrimPrefix(input, ":type "))
			if typ, found := session.TypeOf(name); found {
				fmt.Println(color.CyanString(typ.String()))
			} else {
				fmt.Printf("%s is not defined\n", name)
			}
			continue
		case strings.HasPrefix(input, ":"):
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		outcome, err := session.Eval(src)
		if err != nil {
			printFailure(stderr, "", src, err)
			continue
		}
		if _, unit := outcome.Value.(interp.Unit); outcome.IsValue() && !unit && outcome.Value != nil {
			fmt.Println(color.CyanString(outcome.Value.String()))
		}
	}
}

// readInput reads lines until they form a complete program, or until
// the parser reports an error that more input cannot fix.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := pipeline.Parse(src); parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
