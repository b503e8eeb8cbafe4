package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/lexer"
	"github.com/flavor-lang/flavor/internal/parser"
)

func parseSource(t *testing.T, src string) ([]ast.Node, error) {
	t.Helper()

	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lexing error: %v", err)
	}
	return parser.Parse(toks)
}

func mustParse(t *testing.T, src string) []ast.Node {
	t.Helper()

	program, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

// exprOf returns the expression of a single expression statement.
func exprOf(t *testing.T, src string) ast.Node {
	t.Helper()

	program := mustParse(t, src)
	if len(program) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program))
	}
	stmt, ok := program[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", program[0])
	}
	return stmt.Expr
}

// show renders an expression fully parenthesized.
func show(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.NumberLiteral:
		return n.Value
	case *ast.BoolLiteral:
		return fmt.Sprint(n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *ast.UnitLiteral:
		return "nothing"
	case *ast.BinaryExpression:
		return "(" + show(n.Left) + " " + n.Operator + " " + show(n.Right) + ")"
	case *ast.UnaryExpression:
		if n.IsPostfix {
			return "(" + show(n.Operand) + n.Operator + ")"
		}
		return "(" + n.Operator + show(n.Operand) + ")"
	case *ast.ArrayAccess:
		return show(n.Array) + "[" + show(n.Index) + "]"
	case *ast.FunctionCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = show(a)
		}
		return show(n.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *ast.ArrayLiteral:
		elems := make([]string, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = show(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.FunctionExpression:
		return "<closure>"
	}
	return fmt.Sprintf("<%T>", n)
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := mustParse(t, "fn add(a: int, b: int) -> int { return a + b; }")

	if len(program) != 1 {
		t.Fatalf("expected 1 node, got %d", len(program))
	}
	fn, ok := program[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", program[0])
	}

	if fn.Name != "add" {
		t.Fatalf("expected name add, got %q", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	for i, want := range []string{"a", "b"} {
		if fn.Params[i].Name != want || fn.Params[i].Type.String() != "int" {
			t.Fatalf("param %d: expected %s: int, got %s: %s", i, want, fn.Params[i].Name, fn.Params[i].Type)
		}
	}
	if fn.ReturnType.String() != "int" {
		t.Fatalf("expected return type int, got %s", fn.ReturnType)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected body of 1 statement, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body.Stmts[0])
	}
	if got := show(ret.Value); got != "(a + b)" {
		t.Fatalf("expected (a + b), got %s", got)
	}

	if want := diag.NewSpan(1, 1, 1, 47); fn.Span() != want {
		t.Fatalf("expected span %+v, got %+v", want, fn.Span())
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 * 2 + 3;", "((1 * 2) + 3)"},
		{"a - b - c;", "((a - b) - c)"},
		{"a / b % c;", "((a / b) % c)"},
		{"a < b == c > d;", "((a < b) == (c > d))"},
		{"a && b || c && d;", "((a && b) || (c && d))"},
		{"a == b && c != d;", "((a == b) && (c != d))"},
		{"a = b || c;", "(a = (b || c))"},
		{"a = b = c;", "(a = (b = c))"},
		{"(1 + 2) * 3;", "((1 + 2) * 3)"},
		{"-a * b;", "((-a) * b)"},
		{"!a && b;", "((!a) && b)"},
		{"--!x;", "(--(!x))"},
		{"- -x;", "(-(-x))"},
		{"x++ + ++y;", "((x++) + (++y))"},
		{"f()[0]++;", "(f()[0]++)"},
		{"m[i][j] = m[j][i];", "(m[i][j] = m[j][i])"},
		{"f(1, g(2), [3, 4])(5);", "f(1, g(2), [3, 4])(5)"},
		{"xs[i + 1]--;", "(xs[(i + 1)]--)"},
		{"nothing;", "nothing"},
		{`"hi";`, `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := show(exprOf(t, tt.input)); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	src := `
let x: int = 1;
let f = <n: int, m: [int]> -> bool { return true; };
print x, "s", f(1, [2]);
while x < 10 { x++; if x == 5 { break; } }
if x > 1 { print 1; } else if x > 0 { print 2; } else { print 3; }
{ let inner = 2; }
fn noop() -> nothing { return; }
`
	program := mustParse(t, src)

	wantTypes := []string{
		"*ast.LetDeclaration",
		"*ast.LetDeclaration",
		"*ast.Print",
		"*ast.While",
		"*ast.If",
		"*ast.Body",
		"*ast.FunctionDeclaration",
	}
	if len(program) != len(wantTypes) {
		t.Fatalf("expected %d statements, got %d:\n%s", len(wantTypes), len(program), spew.Sdump(program))
	}
	for i, want := range wantTypes {
		if got := fmt.Sprintf("%T", program[i]); got != want {
			t.Fatalf("statement %d: expected %s, got %s", i, want, got)
		}
	}

	let := program[0].(*ast.LetDeclaration)
	if let.Name != "x" || let.Type == nil || let.Type.String() != "int" {
		t.Fatalf("unexpected let: %s %v", let.Name, let.Type)
	}

	closure, ok := program[1].(*ast.LetDeclaration).Value.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("expected closure value")
	}
	if len(closure.Params) != 2 || closure.Params[1].Type.String() != "[int]" {
		t.Fatalf("unexpected closure params %s", spew.Sdump(closure.Params))
	}
	if closure.ReturnType.String() != "bool" {
		t.Fatalf("expected bool return, got %s", closure.ReturnType)
	}

	if got := len(program[2].(*ast.Print).Args); got != 3 {
		t.Fatalf("expected 3 print args, got %d", got)
	}

	ifStmt := program[4].(*ast.If)
	if ifStmt.Else == nil || len(ifStmt.Else.Stmts) != 1 {
		t.Fatalf("expected else-if chain")
	}
	nested, ok := ifStmt.Else.Stmts[0].(*ast.If)
	if !ok || nested.Else == nil {
		t.Fatalf("expected nested if with else, got %T", ifStmt.Else.Stmts[0])
	}

	noop := program[6].(*ast.FunctionDeclaration)
	ret := noop.Body.Stmts[0].(*ast.Return)
	if _, ok := ret.Value.(*ast.UnitLiteral); !ok {
		t.Fatalf("bare return should carry a unit literal, got %T", ret.Value)
	}
}

func TestParseFunctionExpressionForms(t *testing.T) {
	for _, src := range []string{
		"let f = fn (a: int) -> int { return a; };",
		"let f = <a: int> -> int { return a; };",
	} {
		program := mustParse(t, src)
		let := program[0].(*ast.LetDeclaration)
		fn, ok := let.Value.(*ast.FunctionExpression)
		if !ok {
			t.Fatalf("%s: expected function expression, got %T", src, let.Value)
		}
		if len(fn.Params) != 1 || fn.Params[0].Name != "a" {
			t.Fatalf("%s: unexpected params", src)
		}
		if fn.Span().StartColumn != 9 {
			t.Fatalf("%s: expected span to start at column 9, got %d", src, fn.Span().StartColumn)
		}
	}

	// A fn expression is also allowed in statement position.
	program := mustParse(t, "fn () -> int { return 1; }();")
	if _, ok := program[0].(*ast.ExpressionStatement); !ok {
		t.Fatalf("expected expression statement, got %T", program[0])
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let a: int = 0;", "int"},
		{"let a: string = 0;", "string"},
		{"let a: nothing = 0;", "nothing"},
		{"let a: Point = 0;", "Point"},
		{"let a: array(int) = 0;", "[int]"},
		{"let a: [[bool]] = 0;", "[[bool]]"},
		{"let a: (int, bool) -> int = 0;", "(int, bool) -> int"},
		{"let a: () -> nothing = 0;", "() -> nothing"},
		{"let a: (int) -> (int) -> int = 0;", "(int) -> (int) -> int"},
		{"let a: [(int) -> int] = 0;", "[(int) -> int]"},
	}

	for _, tt := range tests {
		program := mustParse(t, tt.input)
		let := program[0].(*ast.LetDeclaration)
		if got := let.Type.String(); got != tt.want {
			t.Fatalf("%s: expected type %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestParseSpans(t *testing.T) {
	program := mustParse(t, "let x = 1 +\n  foo(2);")

	let := program[0].(*ast.LetDeclaration)
	if want := diag.NewSpan(1, 1, 2, 9); let.Span() != want {
		t.Fatalf("expected let span %+v, got %+v", want, let.Span())
	}
	bin := let.Value.(*ast.BinaryExpression)
	if want := diag.NewSpan(1, 9, 2, 8); bin.Span() != want {
		t.Fatalf("expected binary span %+v, got %+v", want, bin.Span())
	}
	call := bin.Right.(*ast.FunctionCall)
	if want := diag.NewSpan(2, 3, 2, 8); call.Span() != want {
		t.Fatalf("expected call span %+v, got %+v", want, call.Span())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input      string
		message    string
		span       diag.Span
		incomplete bool
	}{
		{"let x = 1", "Expected token Semicolon, found Eof", diag.Point(1, 10), true},
		{"let = 1;", "Expected token Identifier, found Assign ('=')", diag.Point(1, 5), false},
		{"print );", "Unexpected token in expression: RPar (')')", diag.Point(1, 7), false},
		{"let x: 5 = 1;", "Expected a type, found Number ('5')", diag.Point(1, 8), false},
		{"fn f() { }", "Expected token SlimArrow, found LBra ('{')", diag.Point(1, 8), false},
		{"if x { print 1;", "Expected token RBra, found Eof", diag.Point(1, 16), true},
		{"xs[1;", "Expected token RSqu, found Semicolon (';')", diag.Point(1, 5), false},
		{"f(1, 2", "Expected token RPar, found Eof", diag.Point(1, 7), true},
		{"while { }", "Unexpected token in expression: LBra ('{')", diag.Point(1, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseSource(t, tt.input)
			if err == nil {
				t.Fatalf("expected an error")
			}
			d, ok := diag.AsDiagnostic(err)
			if !ok {
				t.Fatalf("expected a diagnostic, got %T", err)
			}
			if d.Phase != diag.PhaseParsing {
				t.Fatalf("expected phase Parsing, got %s", d.Phase)
			}
			if d.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, d.Message)
			}
			if d.Span != tt.span {
				t.Fatalf("expected span %+v, got %+v", tt.span, d.Span)
			}
			if got := parser.IsIncomplete(err); got != tt.incomplete {
				t.Fatalf("expected IsIncomplete=%v, got %v", tt.incomplete, got)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40) + ";"
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lexing error: %v", err)
	}

	if _, err := parser.Parse(toks); err != nil {
		t.Fatalf("default depth should accept 40 levels: %v", err)
	}

	_, err = parser.Parse(toks, parser.WithMaxDepth(10))
	d, ok := diag.AsDiagnostic(err)
	if !ok || !strings.Contains(d.Message, "Nesting exceeds 10 levels") {
		t.Fatalf("expected nesting error, got %v", err)
	}
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	toks, err := lexer.Tokenize("let x = 1;")
	if err != nil {
		t.Fatalf("unexpected lexing error: %v", err)
	}
	program, err := parser.Parse(toks[:len(toks)-1])
	if err != nil || len(program) != 1 {
		t.Fatalf("expected one statement, got %d (%v)", len(program), err)
	}

	if program, err := parser.Parse(nil); err != nil || len(program) != 0 {
		t.Fatalf("empty token stream should parse to an empty program")
	}
}
