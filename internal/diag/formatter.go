package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Renderer formats diagnostics with the offending source line and a
// caret underline sized to the span.
type Renderer struct {
	filename string
	lines    []string
	colored  bool
}

// NewRenderer creates a renderer for one source file. Colour is enabled
// when stderr is a terminal.
func NewRenderer(filename, source string) *Renderer {
	fd := os.Stderr.Fd()
	return &Renderer{
		filename: filename,
		lines:    strings.Split(source, "\n"),
		colored:  isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// SetColor forces colour output on or off.
func (r *Renderer) SetColor(enabled bool) {
	r.colored = enabled
}

// Fprint writes the rendered diagnostic to w.
func (r *Renderer) Fprint(w io.Writer, d *Diagnostic) {
	fmt.Fprint(w, r.Render(d))
}

// Render returns the diagnostic as text:
//
//	[Phase] message
//	--> file:line:col
//	   3 | let x = y;
//	     |         ^
func (r *Renderer) Render(d *Diagnostic) string {
	header := r.paint(color.New(color.FgYellow, color.Bold), "["+d.Phase.String()+"]")
	message := r.paint(color.New(color.FgYellow), d.Message)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", header, message)
	if !d.HasSpan() {
		return b.String()
	}

	span := d.Span
	if r.filename != "" {
		fmt.Fprintf(&b, "--> %s:%d:%d\n", r.filename, span.StartLine, span.StartColumn)
	} else {
		fmt.Fprintf(&b, "--> %d:%d\n", span.StartLine, span.StartColumn)
	}

	var line []rune
	if idx := span.StartLine - 1; idx >= 0 && idx < len(r.lines) {
		line = []rune(strings.TrimRight(r.lines[idx], "\r"))
	}

	offset, width := highlightRange(span, len(line))
	highlight := r.paint(color.New(color.FgRed), string(line[offset:offset+width]))
	pre := string(line[:offset])
	post := string(line[offset+width:])

	carets := strings.Repeat("^", max(1, width))
	fmt.Fprintf(&b, "%4d | %s%s%s\n", span.StartLine, pre, highlight, post)
	fmt.Fprintf(&b, "     | %s%s\n", strings.Repeat(" ", offset), r.paint(color.New(color.FgRed), carets))
	return b.String()
}

// highlightRange returns the rune offset and width of the highlighted
// part of a line of lineLen runes. Multi-line spans highlight to the end
// of their first line.
func highlightRange(span Span, lineLen int) (offset, width int) {
	offset = min(max(span.StartColumn-1, 0), lineLen)
	available := lineLen - offset

	if span.StartLine == span.EndLine {
		width = span.EndColumn - span.StartColumn + 1
	} else {
		width = available
	}
	width = min(max(width, 1), available)
	return offset, width
}

func (r *Renderer) paint(c *color.Color, s string) string {
	if r.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
