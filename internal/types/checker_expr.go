package types

import (
	"strconv"

	"github.com/flavor-lang/flavor/internal/ast"
)

// checkExpr types an expression under the current expectedType.
func (c *Checker) checkExpr(node ast.Node) (Type, error) {
	switch n := node.(type) {
	case *ast.UnitLiteral:
		return TypeUnit, nil
	case *ast.NumberLiteral:
		if _, err := strconv.ParseInt(n.Value, 10, 64); err != nil {
			return nil, errorf(n.Span(), "Invalid integer literal '%s'", n.Value)
		}
		return TypeInt, nil
	case *ast.StringLiteral:
		return TypeString, nil
	case *ast.BoolLiteral:
		return TypeBool, nil
	case *ast.Identifier:
		sym := c.scope.Lookup(n.Name)
		if sym == nil {
			return nil, errorf(n.Span(), "Undefined variable '%s'", n.Name)
		}
		return sym.Type, nil
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(n)
	case *ast.ArrayAccess:
		return c.checkArrayAccess(n)
	case *ast.FunctionCall:
		return c.checkCall(n)
	case *ast.FunctionExpression:
		return c.checkFunctionExpr(n)
	case *ast.UnaryExpression:
		return c.checkUnary(n)
	case *ast.BinaryExpression:
		return c.checkBinary(n)
	}

	// A statement in expression position.
	t, _, err := c.check(node)
	return t, err
}

func (c *Checker) checkArrayLiteral(n *ast.ArrayLiteral) (Type, error) {
	var expectedElem Type
	if arr, ok := c.expectedType.(*Array); ok {
		expectedElem = arr.Elem
	}

	if len(n.Elems) == 0 {
		if expectedElem != nil {
			return &Array{Elem: expectedElem}, nil
		}
		return &Array{Elem: TypeUnit}, nil
	}

	var elemType Type
	for _, elem := range n.Elems {
		t, err := c.expr(elem, expectedElem)
		if err != nil {
			return nil, err
		}

		if expectedElem != nil {
			if !Equal(t, expectedElem) {
				return nil, errorf(elem.Span(), "Array element type mismatch: expected %s, found %s", expectedElem, t)
			}
			continue
		}
		if elemType == nil {
			elemType = t
		} else if !Equal(elemType, t) {
			return nil, errorf(elem.Span(), "Array elements must be of the same type, found %s and %s", elemType, t)
		}
	}

	if expectedElem != nil {
		return &Array{Elem: expectedElem}, nil
	}
	return &Array{Elem: elemType}, nil
}

func (c *Checker) checkArrayAccess(n *ast.ArrayAccess) (Type, error) {
	arrayType, err := c.expr(n.Array, nil)
	if err != nil {
		return nil, err
	}
	indexType, err := c.expr(n.Index, nil)
	if err != nil {
		return nil, err
	}

	if !Equal(indexType, TypeInt) {
		return nil, errorf(n.Index.Span(), "Array index must be of type int, found %s", indexType)
	}
	arr, ok := arrayType.(*Array)
	if !ok {
		return nil, errorf(n.Span(), "Cannot access elements of non-array type %s", arrayType)
	}
	return arr.Elem, nil
}

func (c *Checker) checkCall(n *ast.FunctionCall) (Type, error) {
	calleeType, err := c.expr(n.Callee, nil)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeType.(*Function)
	if !ok {
		return nil, errorf(n.Callee.Span(), "Attempted to call non-function type %s", calleeType)
	}

	if len(fn.Params) != len(n.Args) {
		return nil, errorf(n.Span(), "Function called with wrong number of arguments: expected %d, found %d",
			len(fn.Params), len(n.Args))
	}

	for i, arg := range n.Args {
		t, err := c.expr(arg, fn.Params[i])
		if err != nil {
			return nil, err
		}
		if !Equal(t, fn.Params[i]) {
			return nil, errorf(arg.Span(), "Function argument type mismatch: expected %s, found %s", fn.Params[i], t)
		}
	}
	return fn.Return, nil
}

// checkFunctionExpr validates an anonymous function against the
// expected function type, if any.
func (c *Checker) checkFunctionExpr(n *ast.FunctionExpression) (Type, error) {
	sig := Signature(n.Params, n.ReturnType)

	if expected, ok := c.expectedType.(*Function); ok {
		if len(expected.Params) != len(sig.Params) {
			return nil, errorf(n.Span(), "Function expression parameter count mismatch: expected %d, found %d",
				len(expected.Params), len(sig.Params))
		}
		for i := range sig.Params {
			if !Equal(expected.Params[i], sig.Params[i]) {
				return nil, errorf(n.Span(), "Function expression parameter type mismatch: expected %s, found %s",
					expected.Params[i], sig.Params[i])
			}
		}
		if !Equal(expected.Return, sig.Return) {
			return nil, errorf(n.Span(), "Function expression return type mismatch: expected %s, found %s",
				expected.Return, sig.Return)
		}
	}

	returns, err := c.checkFunctionBody(n.Params, sig.Return, n.Body)
	if err != nil {
		return nil, err
	}
	if !IsUnit(sig.Return) && !returns {
		return nil, errorf(n.Body.Span(), "Function expression does not guarantee a return on all paths")
	}
	return sig, nil
}

func (c *Checker) checkUnary(n *ast.UnaryExpression) (Type, error) {
	operand, err := c.expr(n.Operand, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case n.Operator == "!":
		if !Equal(operand, TypeBool) {
			return nil, errorf(n.Span(), "Unary operator '!' requires bool operand but found %s", operand)
		}
		return TypeBool, nil

	case intUnaryOps.Contains(n.Operator):
		if !Equal(operand, TypeInt) {
			return nil, errorf(n.Span(), "Unary operator '%s' requires int operand but found %s", n.Operator, operand)
		}
		if IsStep(n.Operator) && !isAssignable(n.Operand) {
			return nil, errorf(n.Operand.Span(), "Operand of '%s' must be an identifier or array element", n.Operator)
		}
		return TypeInt, nil
	}
	return nil, errorf(n.Span(), "Unknown unary operator '%s'", n.Operator)
}

func (c *Checker) checkBinary(n *ast.BinaryExpression) (Type, error) {
	if n.Operator == "=" {
		return c.checkAssign(n)
	}

	left, err := c.expr(n.Left, nil)
	if err != nil {
		return nil, err
	}
	right, err := c.expr(n.Right, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case IsArithmetic(n.Operator), IsRelational(n.Operator):
		if !Equal(left, TypeInt) || !Equal(right, TypeInt) {
			return nil, errorf(n.Span(), "Operator '%s' requires int operands but found left: %s, right: %s",
				n.Operator, left, right)
		}
		if IsRelational(n.Operator) {
			return TypeBool, nil
		}
		return TypeInt, nil

	case IsLogical(n.Operator):
		if !Equal(left, TypeBool) || !Equal(right, TypeBool) {
			return nil, errorf(n.Span(), "Operator '%s' requires bool operands but found left: %s, right: %s",
				n.Operator, left, right)
		}
		return TypeBool, nil

	case IsEquality(n.Operator):
		if !Equal(left, right) {
			return nil, errorf(n.Span(), "Cannot compare different types. Found left: %s, right: %s", left, right)
		}
		return TypeBool, nil
	}
	return nil, errorf(n.Span(), "Unknown binary operator '%s'", n.Operator)
}

// checkAssign checks the right side under the left side's type; the
// expression has the left side's type.
func (c *Checker) checkAssign(n *ast.BinaryExpression) (Type, error) {
	if !isAssignable(n.Left) {
		return nil, errorf(n.Left.Span(), "Left side of assignment must be an identifier or array access")
	}

	left, err := c.expr(n.Left, nil)
	if err != nil {
		return nil, err
	}
	right, err := c.expr(n.Right, left)
	if err != nil {
		return nil, err
	}
	if !Equal(left, right) {
		return nil, errorf(n.Span(), "Type mismatch in assignment: left is %s, right is %s", left, right)
	}
	return left, nil
}
