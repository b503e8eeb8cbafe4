package parser

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
)

// parseType parses a type annotation:
//
//	int | float | bool | string | nothing | Name
//	array(T) | [T]
//	(T, ...) -> R
func (p *Parser) parseType() (ast.TypeExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cur()
	switch tok.Type {
	case lexer.INT_TYPE, lexer.FLOAT_TYPE, lexer.BOOL_TYPE, lexer.STRING_TYPE, lexer.NOTHING, lexer.IDENT:
		p.next()
		return ast.NewSimpleType(tok.Lexeme, tok.Span), nil

	case lexer.ARRAY_TYPE:
		p.next()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(lexer.RPAREN)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(elem, tok.Span.Merge(rparen.Span)), nil

	case lexer.LBRACKET:
		p.next()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rbracket, err := p.expect(lexer.RBRACKET)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(elem, tok.Span.Merge(rbracket.Span)), nil

	case lexer.LPAREN:
		return p.parseFunctionType()

	default:
		return nil, p.errorf(tok, "Expected a type, found %s", describe(tok))
	}
}

// (T, ...) -> R
func (p *Parser) parseFunctionType() (ast.TypeExpr, error) {
	lparen := p.next()
	span := lparen.Span

	var params []ast.TypeExpr
	if p.cur().Type != lexer.RPAREN {
		for {
			param, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			span = span.Merge(param.Span())

			if _, ok := p.accept(lexer.COMMA); !ok {
				break
			}
		}
	}

	rparen, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	ret, retSpan, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionType(params, ret, diag.Merge(span, rparen.Span, retSpan)), nil
}
