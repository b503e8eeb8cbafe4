package pipeline

import (
	"bytes"
	"io/ioutil"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/lexer"
)

const factorialSrc = `
fn factorial(n: int) -> int {
	if n <= 1 {
		return 1;
	}
	return n * factorial(n - 1);
}
print factorial(5);
factorial(5);`

func TestEvalEndToEnd(t *testing.T) {
	var out bytes.Buffer
	outcome, err := Eval(factorialSrc, WithOutput(&out))
	require.NoError(t, err)
	require.Equal(t, interp.Int(120), outcome.Value)
	require.Equal(t, "120\n", out.String())

	outcome, err = Eval("let x: int = 1; x = x + 41; x;")
	require.NoError(t, err)
	require.Equal(t, interp.Int(42), outcome.Value)
}

func TestStageFailures(t *testing.T) {
	tests := []struct {
		src     string
		phase   diag.Phase
		message string
	}{
		{"let x = 1 $ 2;", diag.PhaseLexing, "Unrecognized token '$'"},
		{"let = 1;", diag.PhaseParsing, "Expected token Identifier, found Assign ('=')"},
		{"fn bad(n: int) -> int { if n > 0 { return n; } }", diag.PhaseTypeChecking, "does not guarantee a return"},
		{"let xs: [int] = [1, true];", diag.PhaseTypeChecking, "element type mismatch"},
		{"let data: [int] = [0]; data[5];", diag.PhaseRuntime, "out of bounds"},
		{"print 10 / (5 - 5);", diag.PhaseRuntime, "Division by zero"},
	}

	for _, tt := range tests {
		err := Run(tt.src, WithOutput(ioutil.Discard))
		if err == nil {
			t.Fatalf("%q: expected an error", tt.src)
		}
		d, ok := diag.AsDiagnostic(err)
		if !ok {
			t.Fatalf("%q: expected a diagnostic, got %T", tt.src, err)
		}
		if d.Phase != tt.phase {
			t.Fatalf("%q: expected phase %s, got %s", tt.src, tt.phase, d.Phase)
		}
		if !strings.Contains(d.Message, tt.message) {
			t.Fatalf("%q: expected message containing %q, got %q", tt.src, tt.message, d.Message)
		}
	}
}

// Running the same source twice must produce the same tokens, tree and
// diagnostics.
func TestIdempotence(t *testing.T) {
	sources := []string{
		factorialSrc,
		"let xs = [1, 2]; xs[0] = xs[1]; print xs;",
		"let x: int = true;",
		"let data: [int] = [0]; data[5];",
		"fn (",
	}

	type result struct {
		Tokens []lexer.Token
		Tree   string
		Output string
		Error  string
	}
	dumper := spew.ConfigState{Indent: " ", DisablePointerAddresses: true}
	runOnce := func(src string) result {
		var r result
		r.Tokens, _ = lexer.Tokenize(src)
		if program, err := Parse(src); err == nil {
			r.Tree = ast.Sprint(program)
		}
		var out bytes.Buffer
		if err := Run(src, WithOutput(&out)); err != nil {
			d, _ := diag.AsDiagnostic(err)
			r.Error = dumper.Sdump(d)
		}
		r.Output = out.String()
		return r
	}

	for _, src := range sources {
		first, second := runOnce(src), runOnce(src)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%q: runs differ (-first +second):\n%s", src, diff)
		}
	}
}

// Programs accepted by the checker should not fail runtime type checks.
func TestCheckedProgramsHaveNoRuntimeTypeErrors(t *testing.T) {
	sources := []string{
		"let xs: [int] = []; xs = [1]; let ys: [[int]] = [xs, []];",
		"fn f() -> nothing { 1 + 1; } let u: nothing = f();",
		"let f: (int) -> int = <n: int> -> int { return n; }; let g: (int) -> int = f;",
		"let s: string = \"x\"; let b: bool = s == \"x\";",
		"fn id(xs: [bool]) -> [bool] { return xs; } let r: [bool] = id([true, false]);",
	}

	for _, src := range sources {
		err := Run(src, WithOutput(ioutil.Discard))
		require.NoError(t, err, src)
	}
}

// Custom types only match themselves when checking, even though the
// interpreter accepts any value for them.
func TestCustomTypesCompareByNameWhenChecking(t *testing.T) {
	_, err := Compile("let p: Point = 3;")
	d, ok := diag.AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, diag.PhaseTypeChecking, d.Phase)
	require.Equal(t, "Type mismatch in let declaration: variable 'p' declared as Point but expression has type int", d.Message)

	_, err = Compile("fn keep(p: Point) -> Point { return p; } let f: (Point) -> Point = keep;")
	require.NoError(t, err)
}

func TestCompileDoesNotEvaluate(t *testing.T) {
	program, err := Compile("print 1 / 0;")
	require.NoError(t, err)
	require.Len(t, program, 1)
}

func TestRandomInputNeverPanics(t *testing.T) {
	f := fuzz.New().NilChance(0).RandSource(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		var src string
		f.Fuzz(&src)
		_ = Run(src, WithOutput(ioutil.Discard))
	}
}

// Token soup reaches the parser and checker far more often than random
// bytes do. It is only compiled, since a soup may loop forever.
func TestTokenSoupNeverPanics(t *testing.T) {
	vocab := []string{
		"let", "fn", "if", "else", "while", "return", "break", "print",
		"x", "y", "f", "int", "bool", "[int]", "nothing", "true", "1", "\"s\"",
		"=", "==", "+", "-", "*", "/", "<", ">", "->", "!", "++", "--", "&&",
		"(", ")", "[", "]", "{", "}", ",", ":", ";",
	}

	f := fuzz.New().NilChance(0).NumElements(1, 24).RandSource(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		var picks []uint8
		f.Fuzz(&picks)

		words := make([]string, len(picks))
		for j, p := range picks {
			words[j] = vocab[int(p)%len(vocab)]
		}
		_, _ = Compile(strings.Join(words, " "))
	}
}
