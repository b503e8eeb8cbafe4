package diag

import "fmt"

// Span is a 1-based, end-inclusive source range.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// NewSpan constructs a span from its four coordinates.
func NewSpan(startLine, startColumn, endLine, endColumn int) Span {
	return Span{
		StartLine:   startLine,
		StartColumn: startColumn,
		EndLine:     endLine,
		EndColumn:   endColumn,
	}
}

// Point returns a zero-width span at line:column.
func Point(line, column int) Span {
	return NewSpan(line, column, line, column)
}

// IsValid returns true if the span has location information.
func (s Span) IsValid() bool {
	return s.StartLine > 0 && s.StartColumn > 0
}

// String renders the start position as line:column.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.StartLine, s.StartColumn)
}

// Merge returns the smallest span covering both s and other.
// Positions compare by line first, then column. An invalid span is
// absorbed by the valid one.
func (s Span) Merge(other Span) Span {
	if !other.IsValid() {
		return s
	}
	if !s.IsValid() {
		return other
	}

	merged := s
	if before(other.StartLine, other.StartColumn, s.StartLine, s.StartColumn) {
		merged.StartLine = other.StartLine
		merged.StartColumn = other.StartColumn
	}
	if before(s.EndLine, s.EndColumn, other.EndLine, other.EndColumn) {
		merged.EndLine = other.EndLine
		merged.EndColumn = other.EndColumn
	}
	return merged
}

// Merge folds any number of spans into one.
func Merge(spans ...Span) Span {
	var out Span
	for _, s := range spans {
		out = out.Merge(s)
	}
	return out
}

func before(lineA, colA, lineB, colB int) bool {
	if lineA != lineB {
		return lineA < lineB
	}
	return colA < colB
}
