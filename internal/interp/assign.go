package interp

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
)

// slot is an assignable location: a variable, optionally followed by a
// chain of indices into nested arrays.
type slot struct {
	name string
	span diag.Span
	path []step
}

type step struct {
	index int64
	span  diag.Span
}

// resolveSlot walks an identifier or index chain. Indices are evaluated
// left to right, as written in the source.
func (in *Interpreter) resolveSlot(target ast.Node, what string) (*slot, Outcome, error) {
	var indices []ast.Node
	node := target
	for {
		switch n := node.(type) {
		case *ast.Identifier:
			s := &slot{name: n.Name, span: n.Span()}
			for i := len(indices) - 1; i >= 0; i-- {
				out, err := in.eval(indices[i])
				if err != nil || !out.IsValue() {
					return nil, out, err
				}
				idx, ok := out.Value.(Int)
				if !ok {
					return nil, Outcome{}, errorf(indices[i].Span(), "Array index must be an integer")
				}
				if idx < 0 {
					return nil, Outcome{}, errorf(indices[i].Span(), "Negative array index")
				}
				s.path = append(s.path, step{index: int64(idx), span: indices[i].Span()})
			}
			return s, unitOutcome, nil

		case *ast.ArrayAccess:
			indices = append(indices, n.Index)
			node = n.Array

		default:
			return nil, Outcome{}, errorf(node.Span(), "%s", what)
		}
	}
}

// container returns the array holding the slot's last index, or nil
// when the slot is a plain variable.
func (in *Interpreter) container(s *slot) (*Array, error) {
	current, ok := in.env.Get(s.name)
	if !ok {
		return nil, errorf(s.span, "Undefined variable: %s", s.name)
	}
	if len(s.path) == 0 {
		return nil, nil
	}

	for depth, st := range s.path {
		arr, ok := current.(*Array)
		if !ok {
			if depth == 0 {
				return nil, errorf(s.span, "Variable '%s' is not an array", s.name)
			}
			return nil, errorf(s.path[depth-1].span, "Value is not an array")
		}
		if depth == len(s.path)-1 {
			return arr, nil
		}
		if st.index >= int64(len(arr.Elems)) {
			return nil, errorf(st.span, "Array index out of bounds")
		}
		current = arr.Elems[st.index]
	}
	return nil, nil
}

func (in *Interpreter) load(s *slot) (Value, error) {
	arr, err := in.container(s)
	if err != nil {
		return nil, err
	}
	if arr == nil {
		v, _ := in.env.Get(s.name)
		return v, nil
	}
	last := s.path[len(s.path)-1]
	if last.index >= int64(len(arr.Elems)) {
		return nil, errorf(last.span, "Array index out of bounds")
	}
	return arr.Elems[last.index], nil
}

// store writes v into the slot in place. Arrays never grow.
func (in *Interpreter) store(s *slot, v Value) error {
	arr, err := in.container(s)
	if err != nil {
		return err
	}
	if arr == nil {
		in.env.Assign(s.name, v)
		return nil
	}
	last := s.path[len(s.path)-1]
	if last.index >= int64(len(arr.Elems)) {
		return errorf(last.span, "Index %d out of bounds for array '%s' of length %d", last.index, s.name, len(arr.Elems))
	}
	arr.Elems[last.index] = v
	return nil
}

// evalAssign stores a copy of the right side and yields the right side.
// A name not bound in the current frame is updated where it was found,
// which may be a closure's captured scope.
func (in *Interpreter) evalAssign(n *ast.BinaryExpression) (Outcome, error) {
	s, out, err := in.resolveSlot(n.Left, "Left side of assignment must be an identifier or array access")
	if err != nil || !out.IsValue() {
		return out, err
	}

	out, err = in.eval(n.Right)
	if err != nil || !out.IsValue() {
		return out, err
	}
	if err := in.store(s, Copy(out.Value)); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// evalStep applies ++ or --. Postfix yields the old value, prefix the
// new one.
func (in *Interpreter) evalStep(n *ast.UnaryExpression) (Outcome, error) {
	s, out, err := in.resolveSlot(n.Operand, "Operand must be an identifier or array access for increment/decrement")
	if err != nil || !out.IsValue() {
		return out, err
	}

	current, err := in.load(s)
	if err != nil {
		return Outcome{}, err
	}
	old, ok := current.(Int)
	if !ok {
		return Outcome{}, errorf(n.Operand.Span(), "Unsupported unary operation: %s on %s", n.Operator, current.TypeName())
	}

	updated := old + 1
	if n.Operator == "--" {
		updated = old - 1
	}
	if err := in.store(s, updated); err != nil {
		return Outcome{}, err
	}

	if n.IsPostfix {
		return valueOf(old), nil
	}
	return valueOf(updated), nil
}
