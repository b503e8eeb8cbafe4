package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flavor-lang/flavor/internal/diag"
	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/parser"
)

func TestSessionKeepsState(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(WithOutput(&out))

	_, err := s.Eval("let count = 0; fn bump() -> int { count = count + 1; return count; }")
	require.NoError(t, err)

	outcome, err := s.Eval("bump(); bump();")
	require.NoError(t, err)
	require.Equal(t, interp.Int(2), outcome.Value)

	_, err = s.Eval("print count;")
	require.NoError(t, err)
	require.Equal(t, "0\n", out.String(), "bump writes to its own captured scope")

	typ, ok := s.TypeOf("bump")
	require.True(t, ok)
	require.Equal(t, "() -> int", typ.String())
}

func TestSessionDiscardsRejectedInput(t *testing.T) {
	s := NewSession(WithOutput(&bytes.Buffer{}))

	_, err := s.Eval("let a = 1; let b: bool = a;")
	d, ok := diag.AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, diag.PhaseTypeChecking, d.Phase)

	_, ok = s.TypeOf("a")
	require.False(t, ok)
	_, ok = s.Lookup("a")
	require.False(t, ok)

	outcome, err := s.Eval("let a = true; a;")
	require.NoError(t, err)
	require.Equal(t, interp.Bool(true), outcome.Value)
}

func TestSessionRecoversFromRuntimeErrors(t *testing.T) {
	s := NewSession(WithOutput(&bytes.Buffer{}))

	_, err := s.Eval("fn boom(n: int) -> int { return 10 / n; } let ok = 1; boom(0);")
	d, isDiag := diag.AsDiagnostic(err)
	require.True(t, isDiag)
	require.Equal(t, diag.PhaseRuntime, d.Phase)

	v, found := s.Lookup("ok")
	require.True(t, found)
	require.Equal(t, interp.Int(1), v)

	outcome, err := s.Eval("boom(5);")
	require.NoError(t, err)
	require.Equal(t, interp.Int(2), outcome.Value)
}

func TestSessionReportsIncompleteInput(t *testing.T) {
	s := NewSession()

	_, err := s.Eval("fn f() -> int {")
	require.True(t, parser.IsIncomplete(err))

	_, err = s.Eval("let x = ;")
	require.Error(t, err)
	require.False(t, parser.IsIncomplete(err))
}

func TestSessionForgetsBindingsOfFailedStatements(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(WithOutput(&out))

	_, err := s.Eval("let a: int = 1 / 0;")
	require.EqualError(t, err, "eval: Division by zero")

	_, ok := s.TypeOf("a")
	require.False(t, ok)

	_, err = s.Eval("print a;")
	d, isDiag := diag.AsDiagnostic(err)
	require.True(t, isDiag)
	require.Equal(t, diag.PhaseTypeChecking, d.Phase, "a was never bound, so the checker must reject it")

	_, err = s.Eval("let b = 2; let c = b / 0; let d = 3;")
	require.Error(t, err)
	typ, ok := s.TypeOf("b")
	require.True(t, ok)
	require.Equal(t, "int", typ.String())
	for _, name := range []string{"c", "d"} {
		_, ok := s.TypeOf(name)
		require.False(t, ok, name)
		_, ok = s.Lookup(name)
		require.False(t, ok, name)
	}

	_, err = s.Eval("print b;")
	require.NoError(t, err)
	require.Equal(t, "2\n", out.String())
}

func TestSessionForgetsStatementsAfterTopLevelReturn(t *testing.T) {
	s := NewSession(WithOutput(&bytes.Buffer{}))

	outcome, err := s.Eval("let a = 1; return a; let b = 2;")
	require.NoError(t, err)
	require.Equal(t, interp.OutcomeReturn, outcome.Kind)

	_, ok := s.TypeOf("a")
	require.True(t, ok)
	_, ok = s.TypeOf("b")
	require.False(t, ok)

	_, err = s.Eval("b;")
	d, isDiag := diag.AsDiagnostic(err)
	require.True(t, isDiag)
	require.Equal(t, diag.PhaseTypeChecking, d.Phase)
}
