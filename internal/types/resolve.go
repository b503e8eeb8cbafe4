package types

import "github.com/flavor-lang/flavor/internal/ast"

// FromAST converts a written type annotation into a Type. Names that
// are not builtin resolve to Custom.
func FromAST(typ ast.TypeExpr) Type {
	switch t := typ.(type) {
	case *ast.SimpleType:
		switch t.Name {
		case "int":
			return TypeInt
		case "float":
			return TypeFloat
		case "bool":
			return TypeBool
		case "string":
			return TypeString
		case "nothing":
			return TypeUnit
		default:
			return &Custom{Name: t.Name}
		}
	case *ast.ArrayType:
		return &Array{Elem: FromAST(t.Elem)}
	case *ast.FunctionType:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = FromAST(p)
		}
		return &Function{Params: params, Return: FromAST(t.Return)}
	}
	return TypeUnit
}

// Signature returns the function type declared by params and ret.
func Signature(params []*ast.Param, ret ast.TypeExpr) *Function {
	fn := &Function{
		Params: make([]Type, len(params)),
		Return: FromAST(ret),
	}
	for i, p := range params {
		fn.Params[i] = FromAST(p.Type)
	}
	return fn
}
