package diag_test

import (
	"fmt"
	"testing"

	"github.com/flavor-lang/flavor/internal/diag"
)

func TestSpanMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b diag.Span
		want diag.Span
	}{
		{
			name: "same line",
			a:    diag.NewSpan(1, 5, 1, 7),
			b:    diag.NewSpan(1, 1, 1, 3),
			want: diag.NewSpan(1, 1, 1, 7),
		},
		{
			name: "across lines",
			a:    diag.NewSpan(2, 4, 2, 9),
			b:    diag.NewSpan(1, 10, 3, 1),
			want: diag.NewSpan(1, 10, 3, 1),
		},
		{
			name: "line wins over column",
			a:    diag.NewSpan(1, 20, 1, 25),
			b:    diag.NewSpan(2, 1, 2, 2),
			want: diag.NewSpan(1, 20, 2, 2),
		},
		{
			name: "invalid is absorbed",
			a:    diag.Span{},
			b:    diag.NewSpan(3, 3, 3, 4),
			want: diag.NewSpan(3, 3, 3, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Merge(tt.b); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got := tt.b.Merge(tt.a); got != tt.want {
				t.Fatalf("merge not symmetric: expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMergeVariadic(t *testing.T) {
	got := diag.Merge(diag.Point(1, 4), diag.Point(1, 1), diag.NewSpan(1, 2, 1, 9))
	want := diag.NewSpan(1, 1, 1, 9)
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAsDiagnostic(t *testing.T) {
	d := diag.Errorf(diag.PhaseRuntime, diag.Point(2, 3), "Undefined variable: %s", "x")
	wrapped := fmt.Errorf("running main.flv: %w", d)

	got, ok := diag.AsDiagnostic(wrapped)
	if !ok {
		t.Fatalf("expected to recover a diagnostic from %v", wrapped)
	}
	if got.Phase != diag.PhaseRuntime {
		t.Fatalf("expected phase %s, got %s", diag.PhaseRuntime, got.Phase)
	}
	if got.Message != "Undefined variable: x" {
		t.Fatalf("unexpected message %q", got.Message)
	}

	if _, ok := diag.AsDiagnostic(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error must not convert to a diagnostic")
	}
}

func TestPhaseString(t *testing.T) {
	want := map[diag.Phase]string{
		diag.PhaseLexing:       "Lexing",
		diag.PhaseParsing:      "Parsing",
		diag.PhaseTypeChecking: "TypeChecking",
		diag.PhaseRuntime:      "Runtime",
	}
	for phase, name := range want {
		if phase.String() != name {
			t.Fatalf("expected %q, got %q", name, phase.String())
		}
	}
}

func TestHasSpan(t *testing.T) {
	if diag.New(diag.PhaseRuntime, "Division by zero", diag.Span{}).HasSpan() {
		t.Fatalf("expected zero span to mean no location")
	}
	if !diag.New(diag.PhaseRuntime, "Division by zero", diag.NewSpan(1, 1, 1, 5)).HasSpan() {
		t.Fatalf("expected span to be reported")
	}
}
