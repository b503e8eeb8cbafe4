package ast

import "github.com/flavor-lang/flavor/internal/diag"

// Node represents any AST node with an associated source span.
// The set of implementations is closed to this package.
type Node interface {
	Span() diag.Span
	node()
}

// Print writes its arguments followed by a newline.
type Print struct {
	Args []Node
	span diag.Span
}

// NewPrint constructs a print statement node.
func NewPrint(args []Node, span diag.Span) *Print {
	return &Print{Args: args, span: span}
}

// Span returns the statement span.
func (p *Print) Span() diag.Span { return p.span }

// Body is a braced statement list.
type Body struct {
	Stmts []Node
	span  diag.Span
}

// NewBody constructs a block node.
func NewBody(stmts []Node, span diag.Span) *Body {
	return &Body{Stmts: stmts, span: span}
}

// Span returns the block span.
func (b *Body) Span() diag.Span { return b.span }

// If represents a conditional. Else is nil when absent.
type If struct {
	Guard Node
	Then  *Body
	Else  *Body
	span  diag.Span
}

// NewIf constructs a conditional node.
func NewIf(guard Node, then, els *Body, span diag.Span) *If {
	return &If{Guard: guard, Then: then, Else: els, span: span}
}

// Span returns the conditional span.
func (i *If) Span() diag.Span { return i.span }

// While represents a guarded loop.
type While struct {
	Guard Node
	Body  *Body
	span  diag.Span
}

// NewWhile constructs a loop node.
func NewWhile(guard Node, body *Body, span diag.Span) *While {
	return &While{Guard: guard, Body: body, span: span}
}

// Span returns the loop span.
func (w *While) Span() diag.Span { return w.span }

// LetDeclaration binds Name to Value. Type is nil when not annotated.
type LetDeclaration struct {
	Name  string
	Type  TypeExpr
	Value Node
	span  diag.Span
}

// NewLetDeclaration constructs a let binding node.
func NewLetDeclaration(name string, typ TypeExpr, value Node, span diag.Span) *LetDeclaration {
	return &LetDeclaration{Name: name, Type: typ, Value: value, span: span}
}

// Span returns the binding span.
func (l *LetDeclaration) Span() diag.Span { return l.span }

// Param represents a function parameter.
type Param struct {
	Name string
	Type TypeExpr
	span diag.Span
}

// NewParam constructs a parameter.
func NewParam(name string, typ TypeExpr, span diag.Span) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

// Span returns the parameter span.
func (p *Param) Span() diag.Span { return p.span }

// FunctionDeclaration represents `fn name(params) -> T { ... }`.
type FunctionDeclaration struct {
	Name       string
	Params     []*Param
	ReturnType TypeExpr
	Body       *Body
	span       diag.Span
}

// NewFunctionDeclaration constructs a function declaration node.
func NewFunctionDeclaration(name string, params []*Param, ret TypeExpr, body *Body, span diag.Span) *FunctionDeclaration {
	return &FunctionDeclaration{
		Name:       name,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		span:       span,
	}
}

// Span returns the declaration span.
func (f *FunctionDeclaration) Span() diag.Span { return f.span }

// FunctionExpression is an anonymous function value.
type FunctionExpression struct {
	Params     []*Param
	ReturnType TypeExpr
	Body       *Body
	span       diag.Span
}

// NewFunctionExpression constructs a function expression node.
func NewFunctionExpression(params []*Param, ret TypeExpr, body *Body, span diag.Span) *FunctionExpression {
	return &FunctionExpression{
		Params:     params,
		ReturnType: ret,
		Body:       body,
		span:       span,
	}
}

// Span returns the expression span.
func (f *FunctionExpression) Span() diag.Span { return f.span }

// Return exits the enclosing function. A bare `return;` carries a
// UnitLiteral.
type Return struct {
	Value Node
	span  diag.Span
}

// NewReturn constructs a return statement node.
func NewReturn(value Node, span diag.Span) *Return {
	return &Return{Value: value, span: span}
}

// Span returns the statement span.
func (r *Return) Span() diag.Span { return r.span }

// Break exits the innermost loop.
type Break struct {
	span diag.Span
}

// NewBreak constructs a break statement node.
func NewBreak(span diag.Span) *Break {
	return &Break{span: span}
}

// Span returns the statement span.
func (b *Break) Span() diag.Span { return b.span }

// FunctionCall represents callee(args...).
type FunctionCall struct {
	Callee Node
	Args   []Node
	span   diag.Span
}

// NewFunctionCall constructs a call node.
func NewFunctionCall(callee Node, args []Node, span diag.Span) *FunctionCall {
	return &FunctionCall{Callee: callee, Args: args, span: span}
}

// Span returns the call span.
func (c *FunctionCall) Span() diag.Span { return c.span }

// UnitLiteral is `nothing`.
type UnitLiteral struct {
	span diag.Span
}

// NewUnitLiteral constructs a unit literal node.
func NewUnitLiteral(span diag.Span) *UnitLiteral {
	return &UnitLiteral{span: span}
}

// Span returns the literal span.
func (u *UnitLiteral) Span() diag.Span { return u.span }

// NumberLiteral keeps the digits as written; conversion happens at
// evaluation time.
type NumberLiteral struct {
	Value string
	span  diag.Span
}

// NewNumberLiteral constructs an integer literal node.
func NewNumberLiteral(value string, span diag.Span) *NumberLiteral {
	return &NumberLiteral{Value: value, span: span}
}

// Span returns the literal span.
func (n *NumberLiteral) Span() diag.Span { return n.span }

// StringLiteral holds the literal text without its quotes.
type StringLiteral struct {
	Value string
	span  diag.Span
}

// NewStringLiteral constructs a string literal node.
func NewStringLiteral(value string, span diag.Span) *StringLiteral {
	return &StringLiteral{Value: value, span: span}
}

// Span returns the literal span.
func (s *StringLiteral) Span() diag.Span { return s.span }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
	span  diag.Span
}

// NewBoolLiteral constructs a boolean literal node.
func NewBoolLiteral(value bool, span diag.Span) *BoolLiteral {
	return &BoolLiteral{Value: value, span: span}
}

// Span returns the literal span.
func (b *BoolLiteral) Span() diag.Span { return b.span }

// Identifier references a binding by name.
type Identifier struct {
	Name string
	span diag.Span
}

// NewIdentifier constructs an identifier node.
func NewIdentifier(name string, span diag.Span) *Identifier {
	return &Identifier{Name: name, span: span}
}

// Span returns the identifier span.
func (i *Identifier) Span() diag.Span { return i.span }

// ArrayLiteral is `[e, ...]`.
type ArrayLiteral struct {
	Elems []Node
	span  diag.Span
}

// NewArrayLiteral constructs an array literal node.
func NewArrayLiteral(elems []Node, span diag.Span) *ArrayLiteral {
	return &ArrayLiteral{Elems: elems, span: span}
}

// Span returns the literal span.
func (a *ArrayLiteral) Span() diag.Span { return a.span }

// ArrayAccess is `array[index]`.
type ArrayAccess struct {
	Array Node
	Index Node
	span  diag.Span
}

// NewArrayAccess constructs an index expression node.
func NewArrayAccess(array, index Node, span diag.Span) *ArrayAccess {
	return &ArrayAccess{Array: array, Index: index, span: span}
}

// Span returns the expression span.
func (a *ArrayAccess) Span() diag.Span { return a.span }

// BinaryExpression covers arithmetic, comparison, logic and assignment.
type BinaryExpression struct {
	Left     Node
	Operator string
	Right    Node
	span     diag.Span
}

// NewBinaryExpression constructs a binary expression node.
func NewBinaryExpression(left Node, op string, right Node, span diag.Span) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right, span: span}
}

// Span returns the expression span.
func (b *BinaryExpression) Span() diag.Span { return b.span }

// UnaryExpression covers prefix `- ! ++ --` and postfix `++ --`.
type UnaryExpression struct {
	Operator  string
	Operand   Node
	IsPostfix bool
	span      diag.Span
}

// NewUnaryExpression constructs a unary expression node.
func NewUnaryExpression(op string, operand Node, postfix bool, span diag.Span) *UnaryExpression {
	return &UnaryExpression{Operator: op, Operand: operand, IsPostfix: postfix, span: span}
}

// Span returns the expression span.
func (u *UnaryExpression) Span() diag.Span { return u.span }

// ExpressionStatement is `expr;`.
type ExpressionStatement struct {
	Expr Node
	span diag.Span
}

// NewExpressionStatement constructs an expression statement node.
func NewExpressionStatement(expr Node, span diag.Span) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr, span: span}
}

// Span returns the statement span.
func (e *ExpressionStatement) Span() diag.Span { return e.span }

func (*Print) node()               {}
func (*Body) node()                {}
func (*If) node()                  {}
func (*While) node()               {}
func (*LetDeclaration) node()      {}
func (*FunctionDeclaration) node() {}
func (*FunctionExpression) node()  {}
func (*Return) node()              {}
func (*Break) node()               {}
func (*FunctionCall) node()        {}
func (*UnitLiteral) node()         {}
func (*NumberLiteral) node()       {}
func (*StringLiteral) node()       {}
func (*BoolLiteral) node()         {}
func (*Identifier) node()          {}
func (*ArrayLiteral) node()        {}
func (*ArrayAccess) node()         {}
func (*BinaryExpression) node()    {}
func (*UnaryExpression) node()     {}
func (*ExpressionStatement) node() {}
