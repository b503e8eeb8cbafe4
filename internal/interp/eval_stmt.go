package interp

import (
	"fmt"
	"strings"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/types"
)

// evalPrint writes the display forms of its arguments, unseparated,
// followed by a newline.
func (in *Interpreter) evalPrint(n *ast.Print) (Outcome, error) {
	var sb strings.Builder
	for _, arg := range n.Args {
		out, err := in.eval(arg)
		if err != nil || !out.IsValue() {
			return out, err
		}
		sb.WriteString(out.Value.String())
	}

	if _, err := fmt.Fprintln(in.out, sb.String()); err != nil {
		return Outcome{}, errorf(n.Span(), "Failed to write output: %v", err)
	}
	return unitOutcome, nil
}

func (in *Interpreter) evalBody(n *ast.Body) (Outcome, error) {
	result := unitOutcome
	for _, stmt := range n.Stmts {
		out, err := in.eval(stmt)
		if err != nil || !out.IsValue() {
			return out, err
		}
		result = out
	}
	return result, nil
}

func (in *Interpreter) evalIf(n *ast.If) (Outcome, error) {
	out, err := in.eval(n.Guard)
	if err != nil || !out.IsValue() {
		return out, err
	}
	guard, ok := out.Value.(Bool)
	if !ok {
		return Outcome{}, errorf(n.Guard.Span(), "If guard must be evaluated to boolean")
	}

	if guard {
		return in.evalBody(n.Then)
	}
	if n.Else != nil {
		return in.evalBody(n.Else)
	}
	return unitOutcome, nil
}

// evalWhile yields the value of the last completed iteration. A break
// ends the loop with that value; a return passes through.
func (in *Interpreter) evalWhile(n *ast.While) (Outcome, error) {
	result := unitOutcome
	for {
		out, err := in.eval(n.Guard)
		if err != nil || !out.IsValue() {
			return out, err
		}
		guard, ok := out.Value.(Bool)
		if !ok {
			return Outcome{}, errorf(n.Guard.Span(), "While guard must be evaluated to boolean")
		}
		if !guard {
			return result, nil
		}

		out, err = in.evalBody(n.Body)
		if err != nil {
			return Outcome{}, err
		}
		switch out.Kind {
		case OutcomeBreak:
			return result, nil
		case OutcomeReturn:
			return out, nil
		}
		result = out
	}
}

func (in *Interpreter) evalLet(n *ast.LetDeclaration) (Outcome, error) {
	out, err := in.eval(n.Value)
	if err != nil || !out.IsValue() {
		return out, err
	}
	v := out.Value

	if n.Type != nil {
		declared := types.FromAST(n.Type)
		if !matchesType(v, declared) {
			return Outcome{}, errorf(n.Span(),
				"Type mismatch: variable '%s' declared as %s but value has runtime type %s",
				n.Name, declared, v.TypeName())
		}
	}

	// A closure literal bound by let sees itself, so it can recurse.
	// Aliases of an existing function do not touch its scope.
	if _, literal := n.Value.(*ast.FunctionExpression); literal {
		fn := v.(*Function)
		fn.Captured.Define(n.Name, fn)
	}
	in.env.Define(n.Name, v)
	return unitOutcome, nil
}

func (in *Interpreter) evalFunctionDecl(n *ast.FunctionDeclaration) (Outcome, error) {
	fn := &Function{
		Params:   paramNames(n.Params),
		Body:     n.Body,
		Captured: in.env.Snapshot(),
	}
	fn.Captured.Define(n.Name, fn)
	in.env.Define(n.Name, fn)
	return unitOutcome, nil
}
