package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/span"
)

type mapSource map[string][]string

func (m mapSource) Line(file string, line int) (string, bool) {
	lines, ok := m[file]
	if !ok || line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

func pos(file string, line, col int) span.Pos {
	return span.Pos{File: file, Line: line, Column: col}
}

func TestRenderWithSourceLine(t *testing.T) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.Error,
		Code:     "ELAB018",
		Message:  "literal out of range for type `U8`",
		Primary: diagnostic.Label{
			Span: span.Span{Start: pos("test.fathom", 3, 11), End: pos("test.fathom", 3, 14)},
		},
	}
	src := mapSource{"test.fathom": {
		"module test",
		"",
		"alias C = 256 : U8",
	}}

	var buf bytes.Buffer
	Render(&buf, d, src)

	want := "error[ELAB018] literal out of range for type `U8`\n" +
		"  --> test.fathom:3:11-test.fathom:3:14\n" +
		"     3 | alias C = 256 : U8\n" +
		fmt.Sprintf("       | %s%s\n", strings.Repeat(" ", 10), strings.Repeat("^", 3))

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("rendered diagnostic mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWithoutSource(t *testing.T) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.Warning,
		Code:     "ELAB015",
		Message:  "this pattern is unreachable",
		Primary: diagnostic.Label{
			Span: span.Span{Start: pos("test.fathom", 5, 1), End: pos("test.fathom", 5, 2)},
		},
	}

	var buf bytes.Buffer
	Render(&buf, d, nil)

	want := "warning[ELAB015] this pattern is unreachable\n" +
		"  --> test.fathom:5:1-test.fathom:5:2\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("rendered diagnostic mismatch (-want +got):\n%s", diff)
	}
}
