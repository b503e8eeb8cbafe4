package parser

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
)

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Type {
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.FN:
		if p.peek().Type == lexer.IDENT {
			return p.parseFunctionDecl()
		}
		return p.parseExpressionStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.LBRACE:
		return p.parseBody()
	default:
		return p.parseExpressionStmt()
	}
}

// print e1, e2, ...;
func (p *Parser) parsePrintStmt() (ast.Node, error) {
	printTok, err := p.expect(lexer.PRINT)
	if err != nil {
		return nil, err
	}
	span := printTok.Span

	var args []ast.Node
	for p.cur().Type != lexer.SEMICOLON {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		span = span.Merge(arg.Span())
		args = append(args, arg)

		comma, ok := p.accept(lexer.COMMA)
		if !ok {
			break
		}
		span = span.Merge(comma.Span)
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return ast.NewPrint(args, span.Merge(semi.Span)), nil
}

// let name[: T] = expr;
func (p *Parser) parseLetStmt() (ast.Node, error) {
	letTok, err := p.expect(lexer.LET)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	span := letTok.Span.Merge(name.Span)

	var declared ast.TypeExpr
	if colon, ok := p.accept(lexer.COLON); ok {
		declared, err = p.parseType()
		if err != nil {
			return nil, err
		}
		span = span.Merge(colon.Span).Merge(declared.Span())
	}

	assign, err := p.expect(lexer.ASSIGN)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}

	span = diag.Merge(span, assign.Span, value.Span(), semi.Span)
	return ast.NewLetDeclaration(name.Lexeme, declared, value, span), nil
}

// fn name(params) -> T { ... }
func (p *Parser) parseFunctionDecl() (ast.Node, error) {
	fnTok, err := p.expect(lexer.FN)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	params, paramsSpan, err := p.parseParams(lexer.LPAREN, lexer.RPAREN)
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

	span := diag.Merge(fnTok.Span, name.Span, paramsSpan, retSpan, body.Span())
	return ast.NewFunctionDeclaration(name.Lexeme, params, ret, body, span), nil
}

// if guard { ... } [else { ... } | else if ...]
func (p *Parser) parseIfStmt() (ast.Node, error) {
	ifTok, err := p.expect(lexer.IF)
	if err != nil {
		return nil, err
	}
	guard, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	span := diag.Merge(ifTok.Span, guard.Span(), then.Span())

	elseTok, ok := p.accept(lexer.ELSE)
	if !ok {
		return ast.NewIf(guard, then, nil, span), nil
	}

	var els *ast.Body
	if p.cur().Type == lexer.IF {
		nested, err := p.parseIfStmt()
		if err != nil {
			return nil, err
		}
		els = ast.NewBody([]ast.Node{nested}, nested.Span())
	} else {
		els, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIf(guard, then, els, diag.Merge(span, elseTok.Span, els.Span())), nil
}

// while guard { ... }
func (p *Parser) parseWhileStmt() (ast.Node, error) {
	whileTok, err := p.expect(lexer.WHILE)
	if err != nil {
		return nil, err
	}
	guard, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(guard, body, diag.Merge(whileTok.Span, guard.Span(), body.Span())), nil
}

// return [expr];
func (p *Parser) parseReturnStmt() (ast.Node, error) {
	retTok, err := p.expect(lexer.RETURN)
	if err != nil {
		return nil, err
	}
	span := retTok.Span

	var value ast.Node = ast.NewUnitLiteral(retTok.Span)
	if p.cur().Type != lexer.SEMICOLON {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		span = span.Merge(value.Span())
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(value, span.Merge(semi.Span)), nil
}

// break;
func (p *Parser) parseBreakStmt() (ast.Node, error) {
	breakTok, err := p.expect(lexer.BREAK)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return ast.NewBreak(breakTok.Span.Merge(semi.Span)), nil
}

// { stmt* }
func (p *Parser) parseBody() (*ast.Body, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	lbrace, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	span := lbrace.Span

	var stmts []ast.Node
	for p.cur().Type != lexer.RBRACE {
		if p.cur().Type == lexer.EOF {
			_, err := p.expect(lexer.RBRACE)
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		span = span.Merge(stmt.Span())
		stmts = append(stmts, stmt)
	}

	rbrace, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	return ast.NewBody(stmts, span.Merge(rbrace.Span)), nil
}

// expr;
func (p *Parser) parseExpressionStmt() (ast.Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr, expr.Span().Merge(semi.Span)), nil
}
