package types

import (
	"github.com/flavor-lang/flavor/internal/ast"
)

func (c *Checker) checkPrint(n *ast.Print) (Type, bool, error) {
	for _, arg := range n.Args {
		if _, err := c.expr(arg, nil); err != nil {
			return nil, false, err
		}
	}
	return TypeUnit, false, nil
}

// checkBody stops at the first statement that guarantees a return; the
// statements after it are not checked.
func (c *Checker) checkBody(n *ast.Body) (Type, bool, error) {
	var last Type = TypeUnit
	for _, stmt := range n.Stmts {
		t, returns, err := c.check(stmt)
		if err != nil {
			return nil, false, err
		}
		last = t
		if returns {
			return last, true, nil
		}
	}
	return last, false, nil
}

// An if guarantees a return only when it has an else and both branches
// guarantee one.
func (c *Checker) checkIf(n *ast.If) (Type, bool, error) {
	guard, err := c.expr(n.Guard, nil)
	if err != nil {
		return nil, false, err
	}
	if !Equal(guard, TypeBool) {
		return nil, false, errorf(n.Guard.Span(), "Guard in if statement should be of type bool, but was %s", guard)
	}

	thenType, thenReturns, err := c.checkBody(n.Then)
	if err != nil {
		return nil, false, err
	}
	if n.Else == nil {
		return thenType, false, nil
	}

	_, elseReturns, err := c.checkBody(n.Else)
	if err != nil {
		return nil, false, err
	}
	if thenReturns && elseReturns {
		if c.expectedReturn != nil {
			return c.expectedReturn, true, nil
		}
		return TypeUnit, true, nil
	}
	return thenType, false, nil
}

// A while never guarantees a return, whatever its guard.
func (c *Checker) checkWhile(n *ast.While) (Type, bool, error) {
	guard, err := c.expr(n.Guard, nil)
	if err != nil {
		return nil, false, err
	}
	if !Equal(guard, TypeBool) {
		return nil, false, errorf(n.Guard.Span(), "Guard in while statement should be of type bool, but was %s", guard)
	}
	if _, _, err := c.checkBody(n.Body); err != nil {
		return nil, false, err
	}
	return TypeUnit, false, nil
}

func (c *Checker) checkLet(n *ast.LetDeclaration) (Type, bool, error) {
	if fn, ok := n.Value.(*ast.FunctionExpression); ok {
		return c.checkLetFunction(n, fn)
	}

	var declared Type
	if n.Type != nil {
		declared = FromAST(n.Type)
	}

	t, err := c.expr(n.Value, declared)
	if err != nil {
		return nil, false, err
	}

	if declared != nil {
		if !Equal(declared, t) {
			return nil, false, errorf(n.Value.Span(),
				"Type mismatch in let declaration: variable '%s' declared as %s but expression has type %s",
				n.Name, declared, t)
		}
		t = declared
	}

	c.scope.Insert(n.Name, t)
	return t, false, nil
}

// checkLetFunction binds the name before checking the body so that the
// function can call itself.
func (c *Checker) checkLetFunction(n *ast.LetDeclaration, fn *ast.FunctionExpression) (Type, bool, error) {
	inferred := Signature(fn.Params, fn.ReturnType)

	var stored Type = inferred
	if n.Type != nil {
		declared := FromAST(n.Type)
		if !Equal(declared, inferred) {
			return nil, false, errorf(n.Span(),
				"Type mismatch in let declaration: variable '%s' declared as %s but expression has type %s",
				n.Name, declared, inferred)
		}
		stored = declared
	}
	c.scope.Insert(n.Name, stored)

	returns, err := c.checkFunctionBody(fn.Params, inferred.Return, fn.Body)
	if err != nil {
		return nil, false, err
	}
	if !IsUnit(inferred.Return) && !returns {
		return nil, false, errorf(fn.Body.Span(),
			"Function assigned to '%s' does not guarantee a return on all paths", n.Name)
	}
	return stored, false, nil
}

func (c *Checker) checkFunctionDecl(n *ast.FunctionDeclaration) (Type, bool, error) {
	sig := Signature(n.Params, n.ReturnType)
	c.scope.Insert(n.Name, sig)

	returns, err := c.checkFunctionBody(n.Params, sig.Return, n.Body)
	if err != nil {
		return nil, false, err
	}
	if !IsUnit(sig.Return) && !returns {
		return nil, false, errorf(n.Span(), "Function '%s' does not guarantee a return on all paths", n.Name)
	}
	return sig, false, nil
}

func (c *Checker) checkReturn(n *ast.Return) (Type, bool, error) {
	t, err := c.expr(n.Value, c.expectedReturn)
	if err != nil {
		return nil, false, err
	}
	if c.expectedReturn != nil && !Equal(t, c.expectedReturn) {
		return nil, false, errorf(n.Span(),
			"Return type does not match expected type: expected %s, found %s", c.expectedReturn, t)
	}
	return t, true, nil
}
