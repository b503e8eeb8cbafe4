package parser

import (
	"errors"
	"fmt"

	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
)

// ParseError is the error returned by the parser. It unwraps to the
// Parsing diagnostic and remembers whether input ran out first.
type ParseError struct {
	Diagnostic *diag.Diagnostic
	// AtEOF is set when the offending token was the end of input, so
	// more text could complete the program.
	AtEOF bool
}

func (e *ParseError) Error() string { return e.Diagnostic.Error() }

func (e *ParseError) Unwrap() error { return e.Diagnostic }

// IsIncomplete reports whether err is a parse error caused by running
// out of input.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.AtEOF
}

func (p *Parser) errorf(at lexer.Token, format string, args ...interface{}) error {
	return &ParseError{
		Diagnostic: diag.Errorf(diag.PhaseParsing, at.Span, format, args...),
		AtEOF:      at.Type == lexer.EOF,
	}
}

// describe renders a token for messages as `Kind ('lexeme')`.
func describe(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return string(lexer.EOF)
	}
	return fmt.Sprintf("%s ('%s')", tok.Type, tok.Lexeme)
}
