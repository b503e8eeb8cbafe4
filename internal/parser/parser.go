package parser

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/lexer"
)

type prefixParseFn func() (ast.Node, error)

type Option func(*options)

type options struct {
	maxDepth int
}

// DefaultMaxDepth bounds expression and block nesting.
const DefaultMaxDepth = 512

// WithMaxDepth limits how deeply expressions and blocks may nest before
// the parser gives up with a Parsing diagnostic.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// Binding powers, higher binds tighter.
const (
	precedenceAssign     = 10
	precedenceOr         = 40
	precedenceAnd        = 50
	precedenceEquality   = 80
	precedenceComparison = 100
	precedenceSum        = 120
	precedenceProduct    = 150
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   precedenceAssign,
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.PERCENT:  precedenceProduct,
}

// Parser is a recursive descent parser over a pre-lexed token slice.
// cur always reflects the token under examination; the cursor only moves
// forward and the first error aborts the parse.
type Parser struct {
	tokens []lexer.Token
	pos    int

	depth    int
	maxDepth int

	prefixFns map[lexer.TokenType]prefixParseFn
}

// Parse builds the program AST from tokens.
func Parse(tokens []lexer.Token, opts ...Option) ([]ast.Node, error) {
	return New(tokens, opts...).ParseProgram()
}

// New returns a parser positioned at the first token.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	cfg := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		tokens:    tokens,
		maxDepth:  cfg.maxDepth,
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
	}

	p.registerPrefix(lexer.NOTHING, p.parseUnitLiteral)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(lexer.LT, p.parseClosure)
	p.registerPrefix(lexer.FN, p.parseFunctionExpr)

	return p
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var program []ast.Node
	for p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.errorf(p.cur(), "Nesting exceeds %d levels", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
