package ast

import (
	"strings"

	"github.com/flavor-lang/flavor/internal/diag"
)

// TypeExpr represents a type annotation as written in source.
type TypeExpr interface {
	Span() diag.Span
	String() string
	typeNode()
}

// SimpleType is a named type: a builtin keyword (`int`, `nothing`, ...)
// or an identifier naming a custom type.
type SimpleType struct {
	Name string
	span diag.Span
}

// NewSimpleType constructs a named type node.
func NewSimpleType(name string, span diag.Span) *SimpleType {
	return &SimpleType{Name: name, span: span}
}

// Span returns the type span.
func (t *SimpleType) Span() diag.Span { return t.span }

func (t *SimpleType) String() string { return t.Name }

// ArrayType is `array(T)` or `[T]`.
type ArrayType struct {
	Elem TypeExpr
	span diag.Span
}

// NewArrayType constructs an array type node.
func NewArrayType(elem TypeExpr, span diag.Span) *ArrayType {
	return &ArrayType{Elem: elem, span: span}
}

// Span returns the array type span.
func (t *ArrayType) Span() diag.Span { return t.span }

func (t *ArrayType) String() string { return "[" + t.Elem.String() + "]" }

// FunctionType is `(T, ...) -> R`.
type FunctionType struct {
	Params []TypeExpr
	Return TypeExpr
	span   diag.Span
}

// NewFunctionType constructs a function type node.
func NewFunctionType(params []TypeExpr, ret TypeExpr, span diag.Span) *FunctionType {
	return &FunctionType{Params: params, Return: ret, span: span}
}

// Span returns the function type span.
func (t *FunctionType) Span() diag.Span { return t.span }

func (t *FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.Return.String()
}

func (*SimpleType) typeNode()   {}
func (*ArrayType) typeNode()    {}
func (*FunctionType) typeNode() {}
