// Package render formats a diagnostic.Diagnostic for a terminal: a
// colored severity/code header, the message, and (when source text is
// available) the offending line with a caret under the reported column.
// Coloring uses package-level color.New(...).SprintFunc() values;
// caret alignment accounts for
// double-width runes via golang.org/x/text/width so East Asian source
// text does not throw the caret off column.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"github.com/jtojnar/fathom/internal/diagnostic"
)

var (
	errorHeader = color.New(color.FgRed, color.Bold).SprintFunc()
	warnHeader  = color.New(color.FgYellow, color.Bold).SprintFunc()
	codeStyle   = color.New(color.Faint).SprintFunc()
	pointer     = color.New(color.FgCyan).SprintFunc()
	caret       = color.New(color.FgRed, color.Bold).SprintFunc()
	labelStyle  = color.New(color.FgBlue).SprintFunc()
)

// SourceLines resolves a file name to its line contents, used to print
// the offending source line beneath a diagnostic. Callers that only have
// in-memory surface modules (the CLI fixtures) can implement this with a
// map lookup; it is intentionally not tied to any filesystem API, since
// file I/O is out of scope for this module.
type SourceLines interface {
	Line(file string, line int) (string, bool)
}

// Render writes a human-readable rendering of d to w. src may be nil, in
// which case only the header, message, and labels are printed.
func Render(w io.Writer, d diagnostic.Diagnostic, src SourceLines) {
	header := errorHeader
	if d.Severity == diagnostic.Warning {
		header = warnHeader
	}
	fmt.Fprintf(w, "%s%s %s\n", header(d.Severity.String()), codeStyle("["+d.Code+"]"), d.Message)
	fmt.Fprintf(w, "  %s %s\n", pointer("-->"), d.Primary.Span)

	renderSourceLine(w, d.Primary.Span.Start.File, d.Primary.Span.Start.Line, d.Primary.Span.Start.Column, d.Primary.Span.End.Column, src)

	for _, l := range d.Secondary {
		fmt.Fprintf(w, "  %s %s: %s\n", pointer("note"), labelStyle(l.Span.String()), l.Message)
		renderSourceLine(w, l.Span.Start.File, l.Span.Start.Line, l.Span.Start.Column, l.Span.End.Column, src)
	}
}

func renderSourceLine(w io.Writer, file string, line, startCol, endCol int, src SourceLines) {
	if src == nil {
		return
	}
	text, ok := src.Line(file, line)
	if !ok {
		return
	}
	fmt.Fprintf(w, "  %4d | %s\n", line, text)

	offset := visualWidth(text, startCol-1)
	span := visualWidth(text, endCol-1) - offset
	if span < 1 {
		span = 1
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", offset), caret(strings.Repeat("^", span)))
}

// visualWidth returns the terminal column width consumed by the first n
// runes of s, counting double-width (wide/fullwidth) runes as two columns.
func visualWidth(s string, n int) int {
	col := 0
	i := 0
	for _, r := range s {
		if i >= n {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
		i++
	}
	return col
}
