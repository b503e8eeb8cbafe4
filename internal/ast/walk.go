package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Print:
		walkList(n.Args, fn)

	case *Body:
		walkList(n.Stmts, fn)

	case *If:
		Walk(n.Guard, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *While:
		Walk(n.Guard, fn)
		Walk(n.Body, fn)

	case *LetDeclaration:
		Walk(n.Value, fn)

	case *FunctionDeclaration:
		Walk(n.Body, fn)

	case *FunctionExpression:
		Walk(n.Body, fn)

	case *Return:
		Walk(n.Value, fn)

	case *FunctionCall:
		Walk(n.Callee, fn)
		walkList(n.Args, fn)

	case *ArrayLiteral:
		walkList(n.Elems, fn)

	case *ArrayAccess:
		Walk(n.Array, fn)
		Walk(n.Index, fn)

	case *BinaryExpression:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpression:
		Walk(n.Operand, fn)

	case *ExpressionStatement:
		Walk(n.Expr, fn)

	case *Break, *UnitLiteral, *NumberLiteral, *StringLiteral, *BoolLiteral, *Identifier:
		// leaves
	}
}

func walkList(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}

// Count returns the number of nodes reachable from program.
func Count(program []Node) int {
	total := 0
	for _, n := range program {
		Walk(n, func(Node) bool {
			total++
			return true
		})
	}
	return total
}
