package parser

import (
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
)

// cur returns the token under the cursor. A stream without a trailing
// EOF behaves as if it had one after its last token.
func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var span diag.Span
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1].Span
		span = diag.Point(last.EndLine, last.EndColumn+1)
	} else {
		span = diag.Point(1, 1)
	}
	return lexer.Token{Type: lexer.EOF, Lexeme: "\x00", Span: span}
}

// next consumes and returns the current token.
func (p *Parser) next() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has type tt, and fails
// otherwise without moving the cursor.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	tok := p.cur()
	if tok.Type != tt {
		return tok, p.errorf(tok, "Expected token %s, found %s", tt, describe(tok))
	}
	return p.next(), nil
}

// accept consumes the current token when it has type tt.
func (p *Parser) accept(tt lexer.TokenType) (lexer.Token, bool) {
	if p.cur().Type != tt {
		return lexer.Token{}, false
	}
	return p.next(), true
}

// peek returns the token after the current one.
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return lexer.Token{Type: lexer.EOF, Lexeme: "\x00", Span: p.cur().Span}
}
