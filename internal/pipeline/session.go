package pipeline

import (
	"fmt"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/types"
)

// Session evaluates a sequence of inputs against shared state, the way
// a REPL does. An input that fails to check leaves no trace. One that
// fails at runtime keeps the bindings of the top-level statements that
// completed, in both the checker and the interpreter.
type Session struct {
	opts    options
	checker *types.Checker
	interp  *interp.Interpreter
}

// NewSession returns a session with empty global state.
func NewSession(opts ...Option) *Session {
	o := newOptions(opts)
	return &Session{
		opts:    o,
		checker: types.NewChecker(),
		interp:  o.interpreter(),
	}
}

// Eval runs source in the session.
func (s *Session) Eval(source string) (interp.Outcome, error) {
	program, err := s.opts.parse(source)
	if err != nil {
		return interp.Outcome{}, err
	}
	saved := s.checker.Snapshot()
	if err := s.checker.CheckProgram(program); err != nil {
		return interp.Outcome{}, fmt.Errorf("check: %w", err)
	}

	outcome := interp.Outcome{Kind: interp.OutcomeValue, Value: interp.Unit{}}
	for i := range program {
		out, err := s.interp.EvalProgram(program[i : i+1])
		if err != nil {
			s.resync(saved, program[:i])
			return interp.Outcome{}, fmt.Errorf("eval: %w", err)
		}
		outcome = out
		if !out.IsValue() {
			s.resync(saved, program[:i+1])
			break
		}
	}
	return outcome, nil
}

// resync rebuilds the checker's globals from the statements that ran,
// so that names bound only by statements that never ran are not visible
// to later inputs.
func (s *Session) resync(saved *types.Scope, completed []ast.Node) {
	s.checker.Restore(saved)
	if err := s.checker.CheckProgram(completed); err != nil {
		s.opts.log.Warn("Failed to resync checker after runtime error", "err", err)
	}
}

// TypeOf returns the checked type of a global.
func (s *Session) TypeOf(name string) (types.Type, bool) {
	return s.checker.Lookup(name)
}

// Lookup returns the current value of a global.
func (s *Session) Lookup(name string) (interp.Value, bool) {
	return s.interp.Lookup(name)
}
