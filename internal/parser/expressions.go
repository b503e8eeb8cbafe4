package parser

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
)

func (p *Parser) parseExpression() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseBinary(0)
}

// parseBinary climbs the precedence table. The right operand binds at
// prec+1, except for assignment which recurses at its own level so that
// `a = b = c` groups as `a = (b = c)`.
func (p *Parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.cur()
		prec, ok := precedences[opTok.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()

		next := prec + 1
		if opTok.Type == lexer.ASSIGN {
			next = prec
		}
		right, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}

		span := diag.Merge(left.Span(), opTok.Span, right.Span())
		left = ast.NewBinaryExpression(left, opTok.Lexeme, right, span)
	}
}

// parsePostfix applies any chain of `++`, `--`, `[i]` and `(args)` to
// a unary term.
func (p *Parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case lexer.PLUS_PLUS, lexer.MINUS_MINUS:
			opTok := p.next()
			expr = ast.NewUnaryExpression(opTok.Lexeme, expr, true, expr.Span().Merge(opTok.Span))

		case lexer.LBRACKET:
			lbracket := p.next()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			rbracket, err := p.expect(lexer.RBRACKET)
			if err != nil {
				return nil, err
			}
			span := diag.Merge(expr.Span(), lbracket.Span, index.Span(), rbracket.Span)
			expr = ast.NewArrayAccess(expr, index, span)

		case lexer.LPAREN:
			lparen := p.next()
			args, argsSpan, err := p.parseExprList(lexer.RPAREN)
			if err != nil {
				return nil, err
			}
			span := diag.Merge(expr.Span(), lparen.Span, argsSpan)
			expr = ast.NewFunctionCall(expr, args, span)

		default:
			return expr, nil
		}
	}
}

// parseUnary handles prefix `- ! ++ --`, which may repeat (`--!x`).
func (p *Parser) parseUnary() (ast.Node, error) {
	switch p.cur().Type {
	case lexer.MINUS, lexer.BANG, lexer.PLUS_PLUS, lexer.MINUS_MINUS:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		opTok := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(opTok.Lexeme, operand, false, opTok.Span.Merge(operand.Span())), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.cur()
	prefix := p.prefixFns[tok.Type]
	if prefix == nil {
		return nil, p.errorf(tok, "Unexpected token in expression: %s", describe(tok))
	}
	return prefix()
}

// parseExprList parses `e, e, ...` up to and including the closing
// token. The returned span covers the closing token.
func (p *Parser) parseExprList(closing lexer.TokenType) ([]ast.Node, diag.Span, error) {
	var (
		items []ast.Node
		span  diag.Span
	)
	if p.cur().Type != closing {
		for {
			item, err := p.parseExpression()
			if err != nil {
				return nil, span, err
			}
			span = span.Merge(item.Span())
			items = append(items, item)

			comma, ok := p.accept(lexer.COMMA)
			if !ok {
				break
			}
			span = span.Merge(comma.Span)
		}
	}

	end, err := p.expect(closing)
	if err != nil {
		return nil, span, err
	}
	return items, span.Merge(end.Span), nil
}

func (p *Parser) parseUnitLiteral() (ast.Node, error) {
	tok := p.next()
	return ast.NewUnitLiteral(tok.Span), nil
}

func (p *Parser) parseNumberLiteral() (ast.Node, error) {
	tok := p.next()
	return ast.NewNumberLiteral(tok.Lexeme, tok.Span), nil
}

func (p *Parser) parseBoolLiteral() (ast.Node, error) {
	tok := p.next()
	return ast.NewBoolLiteral(tok.Type == lexer.TRUE, tok.Span), nil
}

func (p *Parser) parseStringLiteral() (ast.Node, error) {
	tok := p.next()
	return ast.NewStringLiteral(unquote(tok.Lexeme), tok.Span), nil
}

// unquote strips the surrounding quotes the lexer keeps on string
// lexemes. There are no escape sequences.
func unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

func (p *Parser) parseIdentifier() (ast.Node, error) {
	tok := p.next()
	return ast.NewIdentifier(tok.Lexeme, tok.Span), nil
}

// [e, ...]
func (p *Parser) parseArrayLiteral() (ast.Node, error) {
	lbracket := p.next()
	elems, span, err := p.parseExprList(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(elems, lbracket.Span.Merge(span)), nil
}

// ( expr ). The node keeps the span of the inner expression.
func (p *Parser) parseGroupedExpr() (ast.Node, error) {
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// <p: T, ...> -> R { ... }
func (p *Parser) parseClosure() (ast.Node, error) {
	return p.parseFunctionLiteral(lexer.LT, lexer.GT)
}

// fn (p: T, ...) -> R { ... }
func (p *Parser) parseFunctionExpr() (ast.Node, error) {
	fnTok := p.next()
	fn, err := p.parseFunctionLiteral(lexer.LPAREN, lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionExpression(fn.Params, fn.ReturnType, fn.Body, fnTok.Span.Merge(fn.Span())), nil
}

func (p *Parser) parseFunctionLiteral(open, closing lexer.TokenType) (*ast.FunctionExpression, error) {
	params, paramsSpan, err := p.parseParams(open, closing)
	if err != nil {
		return nil, err
	}
	ret, retSpan, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionExpression(params, ret, body, diag.Merge(paramsSpan, retSpan, body.Span())), nil
}

// parseParams parses `open name: T, ... closing`.
func (p *Parser) parseParams(open, closing lexer.TokenType) ([]*ast.Param, diag.Span, error) {
	openTok, err := p.expect(open)
	if err != nil {
		return nil, diag.Span{}, err
	}
	span := openTok.Span

	var params []*ast.Param
	if p.cur().Type != closing {
		for {
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, span, err
			}
			colon, err := p.expect(lexer.COLON)
			if err != nil {
				return nil, span, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, span, err
			}
			paramSpan := diag.Merge(name.Span, colon.Span, typ.Span())
			params = append(params, ast.NewParam(name.Lexeme, typ, paramSpan))
			span = span.Merge(paramSpan)

			comma, ok := p.accept(lexer.COMMA)
			if !ok {
				break
			}
			span = span.Merge(comma.Span)
		}
	}

	closeTok, err := p.expect(closing)
	if err != nil {
		return nil, span, err
	}
	return params, span.Merge(closeTok.Span), nil
}

// parseReturnType parses the mandatory `-> T` of a function.
func (p *Parser) parseReturnType() (ast.TypeExpr, diag.Span, error) {
	arrow, err := p.expect(lexer.ARROW)
	if err != nil {
		return nil, diag.Span{}, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, diag.Span{}, err
	}
	return ret, arrow.Span.Merge(ret.Span()), nil
}
