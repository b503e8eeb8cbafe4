package interp

import (
	"io"
	"os"
	"time"

	"github.com/inconshreveable/log15"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
)

// DefaultMaxCallDepth bounds nested calls so that runaway recursion
// ends in a diagnostic instead of exhausting the Go stack.
const DefaultMaxCallDepth = 10000

// Interpreter evaluates checked programs. Bindings made by one
// EvalProgram call stay visible to the next.
type Interpreter struct {
	env     *Environment
	globals *Environment

	out          io.Writer
	log          log15.Logger
	depth        int
	maxCallDepth int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput redirects print output. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithLogger sets the logger used for evaluation traces.
func WithLogger(l log15.Logger) Option {
	return func(in *Interpreter) {
		in.log = l
	}
}

// WithMaxCallDepth overrides DefaultMaxCallDepth.
func WithMaxCallDepth(n int) Option {
	return func(in *Interpreter) {
		in.maxCallDepth = n
	}
}

// New returns an interpreter with an empty global frame.
func New(opts ...Option) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		env:          globals,
		globals:      globals,
		out:          os.Stdout,
		log:          log15.Root(),
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// EvalProgram evaluates each top-level node in order. The outcome is
// the value of the last statement, or the control flow that escaped to
// the top level.
func (in *Interpreter) EvalProgram(program []ast.Node) (Outcome, error) {
	start := time.Now()
	in.env, in.depth = in.globals, 0

	result := unitOutcome
	for _, node := range program {
		out, err := in.eval(node)
		if err != nil {
			in.log.Debug("Evaluation failed", "err", err, "elapsed", time.Since(start))
			return Outcome{}, err
		}
		if !out.IsValue() {
			return out, nil
		}
		result = out
	}

	in.log.Debug("Evaluated program", "statements", len(program), "globals", in.globals.Len(), "elapsed", time.Since(start))
	return result, nil
}

// Lookup returns a copy of the global bound to name.
func (in *Interpreter) Lookup(name string) (Value, bool) {
	v, ok := in.globals.Get(name)
	if !ok {
		return nil, false
	}
	return Copy(v), true
}

func errorf(span diag.Span, format string, args ...interface{}) error {
	return diag.Errorf(diag.PhaseRuntime, span, format, args...)
}

func (in *Interpreter) eval(node ast.Node) (Outcome, error) {
	switch n := node.(type) {
	case *ast.Print:
		return in.evalPrint(n)
	case *ast.Body:
		return in.evalBody(n)
	case *ast.If:
		return in.evalIf(n)
	case *ast.While:
		return in.evalWhile(n)
	case *ast.LetDeclaration:
		return in.evalLet(n)
	case *ast.FunctionDeclaration:
		return in.evalFunctionDecl(n)
	case *ast.Return:
		out, err := in.eval(n.Value)
		if err != nil || !out.IsValue() {
			return out, err
		}
		return Outcome{Kind: OutcomeReturn, Value: out.Value}, nil
	case *ast.Break:
		return Outcome{Kind: OutcomeBreak}, nil
	case *ast.ExpressionStatement:
		return in.eval(n.Expr)

	case *ast.FunctionCall:
		return in.evalCall(n)
	case *ast.FunctionExpression:
		fn := &Function{Params: paramNames(n.Params), Body: n.Body, Captured: in.env.Snapshot()}
		return valueOf(fn), nil
	case *ast.UnitLiteral:
		return unitOutcome, nil
	case *ast.NumberLiteral:
		return in.evalNumber(n)
	case *ast.StringLiteral:
		return valueOf(String(n.Value)), nil
	case *ast.BoolLiteral:
		return valueOf(Bool(n.Value)), nil
	case *ast.Identifier:
		v, ok := in.env.Get(n.Name)
		if !ok {
			return Outcome{}, errorf(n.Span(), "Undefined variable: %s", n.Name)
		}
		return valueOf(Copy(v)), nil
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(n)
	case *ast.ArrayAccess:
		return in.evalArrayAccess(n)
	case *ast.BinaryExpression:
		return in.evalBinary(n)
	case *ast.UnaryExpression:
		return in.evalUnary(n)
	}
	return Outcome{}, errorf(node.Span(), "Cannot evaluate %T", node)
}

func paramNames(params []*ast.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
