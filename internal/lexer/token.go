package lexer

import "github.com/flavor-lang/flavor/internal/diag"

// TokenType represents the kind of a token
type TokenType string

// Token represents a lexical token
type Token struct {
	Type   TokenType
	Lexeme string // exact source text; string literals keep their quotes
	Span   diag.Span
}

// Token type constants
const (
	// Special tokens
	UNKNOWN TokenType = "Unknown"
	EOF     TokenType = "Eof"

	// Literals
	IDENT  TokenType = "Identifier"
	NUMBER TokenType = "Number"
	STRING TokenType = "StringLiteral"

	// Keywords
	PRINT   TokenType = "Print"
	LET     TokenType = "Let"
	FN      TokenType = "Fn"
	ALIAS   TokenType = "Alias"
	RETURN  TokenType = "Return"
	IF      TokenType = "If"
	ELSE    TokenType = "Else"
	WHILE   TokenType = "While"
	BREAK   TokenType = "Break"
	TRUE    TokenType = "True"
	FALSE   TokenType = "False"
	NOTHING TokenType = "Nothing"

	// Type keywords
	INT_TYPE    TokenType = "Int"
	FLOAT_TYPE  TokenType = "Float"
	BOOL_TYPE   TokenType = "Bool"
	STRING_TYPE TokenType = "String"
	ARRAY_TYPE  TokenType = "Array"

	// Operators
	ASSIGN      TokenType = "Assign"
	EQ          TokenType = "Eq"
	NOT_EQ      TokenType = "NotEq"
	BANG        TokenType = "Not"
	GT          TokenType = "Gt"
	LT          TokenType = "Lt"
	GE          TokenType = "Ge"
	LE          TokenType = "Le"
	PLUS_PLUS   TokenType = "PlusPlus"
	MINUS_MINUS TokenType = "MinusMinus"
	PLUS        TokenType = "Plus"
	MINUS       TokenType = "Minus"
	ASTERISK    TokenType = "Times"
	SLASH       TokenType = "Div"
	PERCENT     TokenType = "Percent"
	AND         TokenType = "And"
	OR          TokenType = "Or"
	ARROW       TokenType = "SlimArrow"
	FATARROW    TokenType = "BoldArrow"

	// Delimiters
	DOT       TokenType = "Dot"
	COMMA     TokenType = "Comma"
	COLON     TokenType = "Colon"
	SEMICOLON TokenType = "Semicolon"
	LPAREN    TokenType = "LPar"
	RPAREN    TokenType = "RPar"
	LBRACKET  TokenType = "LSqu"
	RBRACKET  TokenType = "RSqu"
	LBRACE    TokenType = "LBra"
	RBRACE    TokenType = "RBra"
)

// eofLexeme is the placeholder lexeme carried by the EOF token.
const eofLexeme = "\x00"

// IsTypeKeyword reports whether t names a builtin type.
func IsTypeKeyword(t TokenType) bool {
	switch t {
	case INT_TYPE, FLOAT_TYPE, BOOL_TYPE, STRING_TYPE, ARRAY_TYPE:
		return true
	default:
		return false
	}
}
