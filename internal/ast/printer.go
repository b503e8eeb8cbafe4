package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of program to w, one line per node
// property.
func Fprint(w io.Writer, program []Node) error {
	p := &printer{w: w}
	for _, n := range program {
		p.node(n, 0)
	}
	return p.err
}

// Sprint returns the outline produced by Fprint.
func Sprint(program []Node) string {
	var b strings.Builder
	_ = Fprint(&b, program)
	return b.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(indent int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", indent)+format+"\n", args...)
}

func typeName(t TypeExpr) string {
	if t == nil {
		return "None"
	}
	return t.String()
}

func (p *printer) params(params []*Param, indent int) {
	p.line(indent, "  Parameters:")
	for _, param := range params {
		p.line(indent, "    Name: %s", param.Name)
		p.line(indent, "    Type: %s", typeName(param.Type))
	}
}

func (p *printer) node(node Node, indent int) {
	switch n := node.(type) {
	case *Print:
		p.line(indent, "Print:")
		for _, arg := range n.Args {
			p.node(arg, indent+1)
		}

	case *Body:
		for _, stmt := range n.Stmts {
			p.node(stmt, indent)
		}

	case *If:
		p.line(indent, "If:")
		p.line(indent, "  Guard:")
		p.node(n.Guard, indent+2)
		p.line(indent, "  Then:")
		p.node(n.Then, indent+2)
		if n.Else != nil {
			p.line(indent, "  Else:")
			p.node(n.Else, indent+2)
		}

	case *While:
		p.line(indent, "While:")
		p.line(indent, "  Guard:")
		p.node(n.Guard, indent+2)
		p.line(indent, "  Body:")
		p.node(n.Body, indent+2)

	case *LetDeclaration:
		p.line(indent, "LetDeclaration:")
		p.line(indent, "  Identifier: %s", n.Name)
		p.line(indent, "  Type: %s", typeName(n.Type))
		p.line(indent, "  Expression:")
		p.node(n.Value, indent+2)

	case *FunctionDeclaration:
		p.line(indent, "FunctionDeclaration:")
		p.line(indent, "  Name: %s", n.Name)
		p.params(n.Params, indent)
		p.line(indent, "  Return Type: %s", typeName(n.ReturnType))
		p.line(indent, "  Body:")
		p.node(n.Body, indent+2)

	case *FunctionExpression:
		p.line(indent, "FunctionExpression:")
		p.params(n.Params, indent)
		p.line(indent, "  Return Type: %s", typeName(n.ReturnType))
		p.line(indent, "  Body:")
		p.node(n.Body, indent+2)

	case *Return:
		p.line(indent, "Return:")
		p.node(n.Value, indent+2)

	case *Break:
		p.line(indent, "Break")

	case *FunctionCall:
		p.line(indent, "FunctionCall:")
		p.line(indent, "  Callee:")
		p.node(n.Callee, indent+2)
		p.line(indent, "  Arguments:")
		for _, arg := range n.Args {
			p.node(arg, indent+2)
		}

	case *UnitLiteral:
		p.line(indent, "UnitLiteral")

	case *NumberLiteral:
		p.line(indent, "NumberLiteral: %s", n.Value)

	case *BoolLiteral:
		p.line(indent, "BoolLiteral: %t", n.Value)

	case *StringLiteral:
		p.line(indent, "StringLiteral: %q", n.Value)

	case *Identifier:
		p.line(indent, "Identifier: %s", n.Name)

	case *ArrayLiteral:
		p.line(indent, "ArrayLiteral:")
		for i, elem := range n.Elems {
			p.line(indent, "  Element %d:", i)
			p.node(elem, indent+2)
		}

	case *ArrayAccess:
		p.line(indent, "ArrayAccess:")
		p.line(indent, "  Array:")
		p.node(n.Array, indent+2)
		p.line(indent, "  Index:")
		p.node(n.Index, indent+2)

	case *BinaryExpression:
		p.line(indent, "BinaryExpression: %s", n.Operator)
		p.line(indent, "  Left:")
		p.node(n.Left, indent+2)
		p.line(indent, "  Right:")
		p.node(n.Right, indent+2)

	case *UnaryExpression:
		p.line(indent, "UnaryExpression: %s", n.Operator)
		p.line(indent, "  Is Postfix: %t", n.IsPostfix)
		p.line(indent, "  Operand:")
		p.node(n.Operand, indent+2)

	case *ExpressionStatement:
		p.line(indent, "ExpressionStatement:")
		p.node(n.Expr, indent+1)
	}
}
