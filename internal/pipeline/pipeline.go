// Package pipeline chains the lexer, parser, checker and interpreter.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/lexer"
	"github.com/flavor-lang/flavor/internal/parser"
	"github.com/flavor-lang/flavor/internal/types"
)

// Option configures a pipeline run or session.
type Option func(*options)

type options struct {
	out           io.Writer
	log           log15.Logger
	maxParseDepth int
	maxCallDepth  int
}

func newOptions(opts []Option) options {
	o := options{
		out:           os.Stdout,
		log:           log15.Root(),
		maxParseDepth: parser.DefaultMaxDepth,
		maxCallDepth:  interp.DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOutput sets where print writes.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger sets the logger for stage traces.
func WithLogger(l log15.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxParseDepth bounds syntactic nesting.
func WithMaxParseDepth(n int) Option {
	return func(o *options) { o.maxParseDepth = n }
}

// WithMaxCallDepth bounds nested calls at runtime.
func WithMaxCallDepth(n int) Option {
	return func(o *options) { o.maxCallDepth = n }
}

func (o options) interpreter() *interp.Interpreter {
	return interp.New(
		interp.WithOutput(o.out),
		interp.WithLogger(o.log),
		interp.WithMaxCallDepth(o.maxCallDepth),
	)
}

// Parse lexes and parses source without type checking.
func Parse(source string, opts ...Option) ([]ast.Node, error) {
	return newOptions(opts).parse(source)
}

func (o options) parse(source string) ([]ast.Node, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	o.log.Debug("Lexed source", "stage", "lex", "tokens", len(tokens))

	program, err := parser.Parse(tokens, parser.WithMaxDepth(o.maxParseDepth))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	o.log.Debug("Parsed program", "stage", "parse", "statements", len(program), "nodes", ast.Count(program))
	return program, nil
}

// Compile returns the checked AST of source.
func Compile(source string, opts ...Option) ([]ast.Node, error) {
	o := newOptions(opts)
	program, err := o.parse(source)
	if err != nil {
		return nil, err
	}
	if err := types.Check(program); err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	o.log.Debug("Checked program", "stage", "check")
	return program, nil
}

// Eval runs every stage over source with fresh state and returns the
// program's outcome.
func Eval(source string, opts ...Option) (interp.Outcome, error) {
	program, err := Compile(source, opts...)
	if err != nil {
		return interp.Outcome{}, err
	}
	outcome, err := newOptions(opts).interpreter().EvalProgram(program)
	if err != nil {
		return interp.Outcome{}, fmt.Errorf("eval: %w", err)
	}
	return outcome, nil
}

// Run is Eval for callers that only care about success. Nothing
// survives between two calls.
func Run(source string, opts ...Option) error {
	_, err := Eval(source, opts...)
	return err
}
