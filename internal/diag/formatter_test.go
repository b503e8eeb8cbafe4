package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flavor-lang/flavor/internal/diag"
)

func TestRenderWithSpan(t *testing.T) {
	src := "let x = 1;\nlet y = x + true;\n"
	r := diag.NewRenderer("main.flv", src)
	r.SetColor(false)

	d := diag.New(diag.PhaseTypeChecking, "Operator '+' requires Int operands", diag.NewSpan(2, 9, 2, 16))
	want := "[TypeChecking] Operator '+' requires Int operands\n" +
		"--> main.flv:2:9\n" +
		"   2 | let y = x + true;\n" +
		"     |         ^^^^^^^^\n"
	require.Equal(t, want, r.Render(d))
}

func TestRenderWithoutSpan(t *testing.T) {
	r := diag.NewRenderer("", "")
	r.SetColor(false)

	d := diag.New(diag.PhaseRuntime, "Unexpected 'break' outside of loop", diag.Span{})
	require.Equal(t, "[Runtime] Unexpected 'break' outside of loop\n", r.Render(d))
}

func TestRenderClampsToLine(t *testing.T) {
	r := diag.NewRenderer("", "fn f() -> int {\n}\n")
	r.SetColor(false)

	// Multi-line span highlights to the end of its first line.
	d := diag.New(diag.PhaseTypeChecking, "no return", diag.NewSpan(1, 15, 2, 1))
	want := "[TypeChecking] no return\n" +
		"--> 1:15\n" +
		"   1 | fn f() -> int {\n" +
		"     |               ^\n"
	require.Equal(t, want, r.Render(d))

	// A point past the end of the line still gets one caret.
	d = diag.New(diag.PhaseParsing, "eof", diag.Point(3, 1))
	out := r.Render(d)
	require.Contains(t, out, "   3 | \n")
	require.Contains(t, out, "     | ^\n")
}
