package main

import (
	"github.com/inconshreveable/log15"
	"gopkg.in/urfave/cli.v1"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/lexer"
	"github.com/flavor-lang/flavor/internal/pipeline"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "Check and evaluate a source file",
	ArgsUsage: "<file" + sourceExt + ">",
	Flags:     []cli.Flag{debugFlag},
	Action:    runSource,
}

func runSource(ctx *cli.Context) error {
	path, src, err := sourceArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger := log15.Root().New("file", path)

	if ctx.Bool(debugFlag.Name) || ctx.GlobalBool(debugFlag.Name) {
		if err := dumpDebug(src); err != nil {
			return report(path, src, err)
		}
	}

	if err := pipeline.Run(src, pipelineOptions(pipeline.WithLogger(logger))...); err != nil {
		logger.Debug("Run failed", "err", err)
		return report(path, src, err)
	}
	return nil
}

// dumpDebug writes the token table and the tree to stderr.
func dumpDebug(src string) error {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	writeTokenTable(stderr, tokens)

	program, err := pipeline.Parse(src, pipelineOptions()...)
	if err != nil {
		return err
	}
	return ast.Fprint(stderr, program)
}
