package diag

import (
	"errors"
	"fmt"
)

// Phase identifies which pipeline stage produced the diagnostic.
type Phase int

const (
	PhaseLexing Phase = iota
	PhaseParsing
	PhaseTypeChecking
	PhaseRuntime
)

func (p Phase) String() string {
	switch p {
	case PhaseLexing:
		return "Lexing"
	case PhaseParsing:
		return "Parsing"
	case PhaseTypeChecking:
		return "TypeChecking"
	case PhaseRuntime:
		return "Runtime"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Diagnostic is the single error record every stage reports.
// A zero Span means the diagnostic has no source location.
type Diagnostic struct {
	Phase   Phase
	Message string
	Span    Span
}

// New returns a diagnostic with the given phase, message and span.
func New(phase Phase, message string, span Span) *Diagnostic {
	return &Diagnostic{
		Phase:   phase,
		Message: message,
		Span:    span,
	}
}

// Errorf builds a diagnostic with a formatted message.
func Errorf(phase Phase, span Span, format string, args ...interface{}) *Diagnostic {
	return New(phase, fmt.Sprintf(format, args...), span)
}

// Error implements the error interface. Only the message is returned;
// the phase and location are the renderer's business.
func (d *Diagnostic) Error() string {
	return d.Message
}

// HasSpan reports whether the diagnostic points at a source location.
func (d *Diagnostic) HasSpan() bool {
	return d.Span.IsValid()
}

// AsDiagnostic unwraps err until it finds a *Diagnostic.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
