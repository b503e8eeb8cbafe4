package interp

import (
	"strconv"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/types"
)

func (in *Interpreter) evalNumber(n *ast.NumberLiteral) (Outcome, error) {
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return Outcome{}, errorf(n.Span(), "Invalid integer literal")
	}
	return valueOf(Int(v)), nil
}

func (in *Interpreter) evalArrayLiteral(n *ast.ArrayLiteral) (Outcome, error) {
	elems := make([]Value, 0, len(n.Elems))
	for _, elem := range n.Elems {
		out, err := in.eval(elem)
		if err != nil || !out.IsValue() {
			return out, err
		}
		elems = append(elems, out.Value)
	}
	return valueOf(&Array{Elems: elems}), nil
}

// evalOperand evaluates node without copying when it names a variable.
// The caller must not let the result escape.
func (in *Interpreter) evalOperand(node ast.Node) (Outcome, error) {
	if id, ok := node.(*ast.Identifier); ok {
		v, found := in.env.Get(id.Name)
		if !found {
			return Outcome{}, errorf(id.Span(), "Undefined variable: %s", id.Name)
		}
		return valueOf(v), nil
	}
	if access, ok := node.(*ast.ArrayAccess); ok {
		return in.index(access)
	}
	return in.eval(node)
}

func (in *Interpreter) evalArrayAccess(n *ast.ArrayAccess) (Outcome, error) {
	out, err := in.index(n)
	if err != nil || !out.IsValue() {
		return out, err
	}
	return valueOf(Copy(out.Value)), nil
}

// index returns the live element selected by n.
func (in *Interpreter) index(n *ast.ArrayAccess) (Outcome, error) {
	base, err := in.evalOperand(n.Array)
	if err != nil || !base.IsValue() {
		return base, err
	}
	idx, err := in.eval(n.Index)
	if err != nil || !idx.IsValue() {
		return idx, err
	}

	arr, ok := base.Value.(*Array)
	i, isInt := idx.Value.(Int)
	if !ok || !isInt {
		return Outcome{}, errorf(n.Span(), "Invalid array access")
	}
	if i < 0 {
		return Outcome{}, errorf(n.Span(), "Negative array index")
	}
	if int64(i) >= int64(len(arr.Elems)) {
		return Outcome{}, errorf(n.Span(), "Array index out of bounds")
	}
	return valueOf(arr.Elems[i]), nil
}

// evalCall binds arguments, evaluated in the caller's frame, in a new
// frame over the callee's captured scope. Falling off the end of the
// body yields unit.
func (in *Interpreter) evalCall(n *ast.FunctionCall) (Outcome, error) {
	callee, err := in.eval(n.Callee)
	if err != nil || !callee.IsValue() {
		return callee, err
	}
	fn, ok := callee.Value.(*Function)
	if !ok {
		return Outcome{}, errorf(n.Callee.Span(), "Callee is not a function")
	}
	if len(fn.Params) != len(n.Args) {
		return Outcome{}, errorf(n.Span(), "Expected %d arguments but got %d", len(fn.Params), len(n.Args))
	}

	frame := NewEnvironment(fn.Captured)
	for i, arg := range n.Args {
		out, err := in.eval(arg)
		if err != nil || !out.IsValue() {
			return out, err
		}
		frame.Define(fn.Params[i], out.Value)
	}

	if in.depth >= in.maxCallDepth {
		return Outcome{}, errorf(n.Span(), "Maximum call depth of %d exceeded", in.maxCallDepth)
	}
	caller := in.env
	in.env = frame
	in.depth++
	defer func() {
		in.env = caller
		in.depth--
	}()

	out, err := in.evalBody(fn.Body)
	if err != nil {
		return Outcome{}, err
	}
	switch out.Kind {
	case OutcomeBreak:
		return Outcome{}, errorf(n.Span(), "Unexpected 'break' outside of loop")
	case OutcomeReturn:
		return valueOf(out.Value), nil
	}
	return unitOutcome, nil
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpression) (Outcome, error) {
	if n.Operator == "=" {
		return in.evalAssign(n)
	}

	left, err := in.eval(n.Left)
	if err != nil || !left.IsValue() {
		return left, err
	}
	right, err := in.eval(n.Right)
	if err != nil || !right.IsValue() {
		return right, err
	}

	v, err := in.binary(n, left.Value, right.Value)
	if err != nil {
		return Outcome{}, err
	}
	return valueOf(v), nil
}

// binary applies a non-assignment operator. Integer arithmetic wraps
// on overflow.
func (in *Interpreter) binary(n *ast.BinaryExpression, left, right Value) (Value, error) {
	op := n.Operator
	l, lInt := left.(Int)
	r, rInt := right.(Int)

	switch {
	case types.IsArithmetic(op) && lInt && rInt:
		switch op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return nil, errorf(n.Span(), "Division by zero")
			}
			return l / r, nil
		case "%":
			if r == 0 {
				return nil, errorf(n.Span(), "Modulo by zero")
			}
			return l % r, nil
		}

	case types.IsRelational(op) && lInt && rInt:
		switch op {
		case "<":
			return Bool(l < r), nil
		case "<=":
			return Bool(l <= r), nil
		case ">":
			return Bool(l > r), nil
		case ">=":
			return Bool(l >= r), nil
		}

	case types.IsLogical(op):
		lb, lok := left.(Bool)
		rb, rok := right.(Bool)
		if lok && rok {
			if op == "&&" {
				return lb && rb, nil
			}
			return lb || rb, nil
		}

	case types.IsEquality(op) && left.TypeName() == right.TypeName():
		eq := Equal(left, right)
		if op == "!=" {
			eq = !eq
		}
		return Bool(eq), nil
	}

	return nil, errorf(n.Span(), "Unsupported binary operation: %s %s %s", left.TypeName(), op, right.TypeName())
}

func (in *Interpreter) evalUnary(n *ast.UnaryExpression) (Outcome, error) {
	if types.IsStep(n.Operator) {
		return in.evalStep(n)
	}

	out, err := in.eval(n.Operand)
	if err != nil || !out.IsValue() {
		return out, err
	}

	switch v := out.Value.(type) {
	case Int:
		if n.Operator == "-" {
			return valueOf(-v), nil
		}
	case Bool:
		if n.Operator == "!" {
			return valueOf(!v), nil
		}
	}
	return Outcome{}, errorf(n.Operand.Span(), "Unsupported unary operation: %s on %s", n.Operator, out.Value.TypeName())
}
