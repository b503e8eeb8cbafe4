package lexer

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/flavor-lang/flavor/internal/diag"
)

// rule pairs a pattern anchored at the scan position (\G) with the
// token it produces.
type rule struct {
	re  *regexp2.Regexp
	typ TokenType
}

// identTail rejects keyword matches that continue as an identifier,
// so that `intx` lexes as one identifier rather than `int` + `x`.
const identTail = `(?![A-Za-z0-9_])`

func keyword(word string, typ TokenType) rule {
	return rule{re: regexp2.MustCompile(`\G`+word+identTail, regexp2.None), typ: typ}
}

func symbol(text string, typ TokenType) rule {
	return rule{re: regexp2.MustCompile(`\G`+regexp.QuoteMeta(text), regexp2.None), typ: typ}
}

func pattern(expr string, typ TokenType) rule {
	return rule{re: regexp2.MustCompile(`\G(?:`+expr+`)`, regexp2.None), typ: typ}
}

// rules is tried top to bottom and the first match wins. Multi-character
// operators precede their single-character prefixes.
var rules = []rule{
	keyword("print", PRINT),
	keyword("let", LET),
	keyword("fn", FN),
	keyword("alias", ALIAS),
	keyword("int", INT_TYPE),
	keyword("float", FLOAT_TYPE),
	keyword("string", STRING_TYPE),
	keyword("bool", BOOL_TYPE),
	keyword("array", ARRAY_TYPE),
	keyword("return", RETURN),
	keyword("break", BREAK),
	keyword("if", IF),
	keyword("else", ELSE),
	keyword("while", WHILE),
	keyword("nothing", NOTHING),
	keyword("true", TRUE),
	keyword("false", FALSE),

	symbol(".", DOT),
	symbol(",", COMMA),
	symbol(":", COLON),
	symbol(";", SEMICOLON),
	symbol("->", ARROW),
	symbol("=>", FATARROW),
	symbol("==", EQ),
	symbol("!=", NOT_EQ),
	symbol("=", ASSIGN),
	symbol("!", BANG),
	symbol(">=", GE),
	symbol("<=", LE),
	symbol(">", GT),
	symbol("<", LT),
	symbol("++", PLUS_PLUS),
	symbol("--", MINUS_MINUS),
	symbol("+", PLUS),
	symbol("-", MINUS),
	symbol("*", ASTERISK),
	symbol("/", SLASH),
	symbol("%", PERCENT),
	symbol("&&", AND),
	symbol("||", OR),
	symbol("(", LPAREN),
	symbol(")", RPAREN),
	symbol("[", LBRACKET),
	symbol("]", RBRACKET),
	symbol("{", LBRACE),
	symbol("}", RBRACE),

	pattern(`[0-9]+`, NUMBER),
	pattern(`"(.*?)"`, STRING),
	pattern(`[A-Za-z_][A-Za-z0-9_]*`, IDENT),
	pattern(`\S+`, UNKNOWN),
}

var whitespace = regexp2.MustCompile(`\G\s+`, regexp2.None)

// Lexer represents the lexer state
type Lexer struct {
	input  []rune
	pos    int // rune offset of the unread remainder
	line   int // current line number (1-based)
	column int // current column number (1-based)
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	return &Lexer{
		input:  []rune(input),
		line:   1,
		column: 1,
	}
}

// Tokenize lexes source into a token stream terminated by EOF.
func Tokenize(source string) ([]Token, error) {
	return New(source).Tokenize()
}

// Tokenize consumes the whole input. The first unrecognized lexeme
// aborts scanning with a Lexing diagnostic.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhitespace(); err != nil {
		return Token{}, err
	}

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Lexeme: eofLexeme, Span: diag.Point(l.line, l.column)}, nil
	}

	for _, r := range rules {
		m, err := r.re.FindRunesMatchStartingAt(l.input, l.pos)
		if err != nil {
			return Token{}, diag.Errorf(diag.PhaseLexing, diag.Point(l.line, l.column), "pattern failure: %v", err)
		}
		if m == nil || m.Index != l.pos || m.Length == 0 {
			continue
		}

		lexeme := m.String()
		tok := Token{Type: r.typ, Lexeme: lexeme, Span: l.advance(m.Runes())}
		if tok.Type == UNKNOWN {
			return Token{}, diag.Errorf(diag.PhaseLexing, tok.Span, "Unrecognized token '%s'", lexeme)
		}
		return tok, nil
	}

	// \S+ always matches after whitespace has been skipped.
	return Token{}, diag.Errorf(diag.PhaseLexing, diag.Point(l.line, l.column), "Unrecognized input")
}

func (l *Lexer) skipWhitespace() error {
	if l.pos >= len(l.input) {
		return nil
	}
	m, err := whitespace.FindRunesMatchStartingAt(l.input, l.pos)
	if err != nil {
		return diag.Errorf(diag.PhaseLexing, diag.Point(l.line, l.column), "pattern failure: %v", err)
	}
	if m != nil && m.Index == l.pos {
		l.advance(m.Runes())
	}
	return nil
}

// advance moves past text and returns its span. Line and column are
// tracked per rune: '\n' starts a new line at column 1.
func (l *Lexer) advance(text []rune) diag.Span {
	startLine, startColumn := l.line, l.column
	endLine, endColumn := startLine, startColumn

	for _, ch := range text {
		endLine, endColumn = l.line, l.column
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.pos += len(text)

	return diag.NewSpan(startLine, startColumn, endLine, endColumn)
}
