package interp

// OutcomeKind tells how evaluation of a node ended.
type OutcomeKind int

const (
	// OutcomeValue is normal completion.
	OutcomeValue OutcomeKind = iota
	// OutcomeBreak unwinds to the innermost loop.
	OutcomeBreak
	// OutcomeReturn unwinds to the innermost call.
	OutcomeReturn
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeValue:
		return "Value"
	case OutcomeBreak:
		return "Break"
	case OutcomeReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// Outcome is the result of every evaluation step. Value is nil for
// OutcomeBreak.
type Outcome struct {
	Kind  OutcomeKind
	Value Value
}

func valueOf(v Value) Outcome {
	return Outcome{Kind: OutcomeValue, Value: v}
}

var unitOutcome = valueOf(Unit{})

// IsValue reports whether evaluation completed normally.
func (o Outcome) IsValue() bool {
	return o.Kind == OutcomeValue
}
