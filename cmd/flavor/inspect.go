package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/lexer"
	"github.com/flavor-lang/flavor/internal/pipeline"
)

var (
	tokensCommand = cli.Command{
		Name:      "tokens",
		Usage:     "Print the token stream of a source file",
		ArgsUsage: "<file" + sourceExt + ">",
		Action:    printTokens,
	}
	astCommand = cli.Command{
		Name:      "ast",
		Usage:     "Print the syntax tree of a source file",
		ArgsUsage: "<file" + sourceExt + ">",
		Action:    printTree,
	}
)

func printTokens(ctx *cli.Context) error {
	path, src, err := sourceArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return report(path, src, err)
	}
	writeTokenTable(os.Stdout, tokens)
	return nil
}

func writeTokenTable(w io.Writer, tokens []lexer.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Lexeme", "Span"})
	table.SetAutoFormatHeaders(false)

	for i, tok := range tokens {
		lexeme := tok.Lexeme
		if tok.Type == lexer.EOF {
			lexeme = ""
		}
		span := fmt.Sprintf("%d:%d-%d:%d", tok.Span.StartLine, tok.Span.StartColumn, tok.Span.EndLine, tok.Span.EndColumn)
		table.Append([]string{fmt.Sprint(i), string(tok.Type), lexeme, span})
	}
	table.Render()
}

func printTree(ctx *cli.Context) error {
	path, src, err := sourceArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	program, err := pipeline.Parse(src, pipelineOptions()...)
	if err != nil {
		return report(path, src, err)
	}
	return ast.Fprint(os.Stdout, program)
}
