package types

import (
	"github.com/flavor-lang/flavor/internal/ast"
)

// Checker performs type checking on the AST. It stops at the first
// error. A Checker may be fed several programs in turn; each one sees
// the globals the earlier ones declared.
type Checker struct {
	GlobalScope *Scope

	scope *Scope
	// expectedReturn is nil outside function bodies.
	expectedReturn Type
	// expectedType propagates an annotation into the expression being
	// checked (array literals, function expressions). nil when absent.
	expectedType Type
}

// NewChecker creates a new type checker.
func NewChecker() *Checker {
	global := NewScope(nil)
	return &Checker{
		GlobalScope: global,
		scope:       global,
	}
}

// Check type-checks program with a fresh checker.
func Check(program []ast.Node) error {
	return NewChecker().CheckProgram(program)
}

// CheckProgram validates program. When it fails, globals declared by
// program are discarded so that the checker can be reused.
func (c *Checker) CheckProgram(program []ast.Node) error {
	saved := c.Snapshot()

	for _, node := range program {
		if _, _, err := c.check(node); err != nil {
			c.Restore(saved)
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of the current globals for Restore.
func (c *Checker) Snapshot() *Scope {
	return c.GlobalScope.Clone()
}

// Restore resets the globals to a copy of a scope taken by Snapshot.
func (c *Checker) Restore(globals *Scope) {
	c.GlobalScope = globals.Clone()
	c.scope = c.GlobalScope
	c.expectedReturn = nil
	c.expectedType = nil
}

// Lookup returns the type of a global binding.
func (c *Checker) Lookup(name string) (Type, bool) {
	sym := c.GlobalScope.Lookup(name)
	if sym == nil {
		return nil, false
	}
	return sym.Type, true
}

// check returns the node's type and whether it guarantees a return on
// every path.
func (c *Checker) check(node ast.Node) (Type, bool, error) {
	switch n := node.(type) {
	case *ast.Print:
		return c.checkPrint(n)
	case *ast.Body:
		return c.checkBody(n)
	case *ast.If:
		return c.checkIf(n)
	case *ast.While:
		return c.checkWhile(n)
	case *ast.LetDeclaration:
		return c.checkLet(n)
	case *ast.FunctionDeclaration:
		return c.checkFunctionDecl(n)
	case *ast.Return:
		return c.checkReturn(n)
	case *ast.Break:
		return TypeUnit, false, nil
	case *ast.ExpressionStatement:
		if _, err := c.expr(n.Expr, nil); err != nil {
			return nil, false, err
		}
		return TypeUnit, false, nil
	}

	t, err := c.checkExpr(node)
	return t, false, err
}

// expr checks node as an expression under the given expected type.
func (c *Checker) expr(node ast.Node, expected Type) (Type, error) {
	t, _, err := c.withExpected(expected, func() (Type, bool, error) {
		t, err := c.checkExpr(node)
		return t, false, err
	})
	return t, err
}

// withExpected runs fn with expectedType set to expected and restores
// the previous context afterwards.
func (c *Checker) withExpected(expected Type, fn func() (Type, bool, error)) (Type, bool, error) {
	previous := c.expectedType
	c.expectedType = expected
	defer func() { c.expectedType = previous }()

	return fn()
}

// checkFunctionBody checks body in a new scope holding params, with ret
// as the expected return type. It reports whether every path returns.
func (c *Checker) checkFunctionBody(params []*ast.Param, ret Type, body *ast.Body) (bool, error) {
	previousScope, previousReturn := c.scope, c.expectedReturn
	c.scope = NewScope(c.scope)
	c.expectedReturn = ret
	defer func() {
		c.scope = previousScope
		c.expectedReturn = previousReturn
	}()

	for _, p := range params {
		c.scope.Insert(p.Name, FromAST(p.Type))
	}

	_, returns, err := c.withExpected(nil, func() (Type, bool, error) {
		return c.checkBody(body)
	})
	return returns, err
}
