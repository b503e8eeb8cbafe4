// flavor is the command-line front end of the Flavor toolchain.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/config"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/pipeline"
)

const sourceExt = ".flv"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file (default: ./" + config.FileName + " if present)",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value: config.Defaults.Log.Verbosity,
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "Dump tokens and the syntax tree before running",
	}
)

// settings is filled in by the app's Before hook.
var settings = config.Defaults

var stderr io.Writer = colorable.NewColorableStderr()

var app = cli.NewApp()

func init() {
	app.Name = "flavor"
	app.Usage = "run and inspect Flavor programs"
	app.Version = "0.1.0"
	app.ArgsUsage = "<file" + sourceExt + ">"
	app.Flags = []cli.Flag{configFileFlag, verbosityFlag, noColorFlag, debugFlag}
	app.Before = setup
	app.Action = runCommand.Action
	app.Commands = []cli.Command{
		runCommand,
		checkCommand,
		tokensCommand,
		astCommand,
		replCommand,
		testCommand,
		dumpConfigCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration, then applies flags over it.
func setup(ctx *cli.Context) error {
	var err error
	if file := ctx.String(configFileFlag.Name); file != "" {
		settings, err = config.Load(file)
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if ctx.IsSet(verbosityFlag.Name) {
		settings.Log.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.Bool(noColorFlag.Name) {
		settings.Output.Color = false
	}
	color.NoColor = color.NoColor || !settings.Output.Color

	format := log15.LogfmtFormat()
	if settings.Output.Color {
		format = log15.TerminalFormat()
	}
	handler := log15.StreamHandler(stderr, format)
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.Lvl(settings.Log.Verbosity), handler))
	log15.Debug("Loaded configuration", "verbosity", settings.Log.Verbosity, "color", settings.Output.Color)
	return nil
}

func pipelineOptions(extra ...pipeline.Option) []pipeline.Option {
	return append([]pipeline.Option{
		pipeline.WithMaxParseDepth(settings.Limits.MaxParseDepth),
		pipeline.WithMaxCallDepth(settings.Limits.MaxCallDepth),
	}, extra...)
}

// readSource loads a source file, enforcing the extension convention.
func readSource(path string) (string, error) {
	if filepath.Ext(path) != sourceExt {
		return "", fmt.Errorf("%s: not a %s file", path, sourceExt)
	}
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(src), nil
}

func sourceArg(ctx *cli.Context) (string, string, error) {
	if ctx.NArg() != 1 {
		return "", "", fmt.Errorf("expected exactly one source file, got %d arguments", ctx.NArg())
	}
	path := ctx.Args().First()
	src, err := readSource(path)
	return path, src, err
}

func newRenderer(filename, src string) *diag.Renderer {
	r := diag.NewRenderer(filename, src)
	if !settings.Output.Color {
		r.SetColor(false)
	}
	return r
}

// printFailure renders err on w: a diagnostic with its source snippet,
// anything else as a plain line.
func printFailure(w io.Writer, filename, src string, err error) {
	if d, ok := diag.AsDiagnostic(err); ok {
		newRenderer(filename, src).Fprint(w, d)
		return
	}
	fmt.Fprintln(w, err)
}

// report prints a pipeline failure on stderr. The returned error only
// carries the exit status.
func report(filename, src string, err error) error {
	printFailure(stderr, filename, src, err)
	return cli.NewExitError("", 1)
}
