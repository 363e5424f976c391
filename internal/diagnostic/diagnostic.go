// Package diagnostic defines the structured error report threaded through
// elaboration: a severity, a stable code, a primary message and span, and
// zero or more secondary labels pointing at related source locations
// (e.g. "first defined here"). Diagnostics are collected by a Sink rather
// than returned, so one malformed item never aborts elaboration of the
// rest of a module.
package diagnostic

import (
	"fmt"

	"github.com/jtojnar/fathom/internal/span"
)

// Severity classifies a Diagnostic. Only Error-severity diagnostics cause
// the elaborator to substitute the error sentinel; Warning and Note are
// informational, and Help carries a suggested fix with no bearing on
// elaboration's outcome.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
	Help
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Label annotates a source location relevant to a Diagnostic: the Primary
// label pinpoints where the problem was found, Secondary labels point at
// related locations (e.g. "first defined here").
type Label struct {
	Span    span.Span
	Message string
}

// Diagnostic is one structured error or warning report. Code is a stable
// identifier (ELAB001, ...) for the constructor that produced it, one per
// diagnostics::* call site in the original elaborator.
type Diagnostic struct {
	Severity  Severity
	Code      string
	Message   string
	Primary   Label
	Secondary []Label
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s]: %s (%s)", d.Severity, d.Code, d.Message, d.Primary.Span)
}

// Sink receives diagnostics as elaboration discovers them, in source
// order.
type Sink interface {
	Report(d Diagnostic)
}

// SliceSink is a Sink that accumulates every reported Diagnostic in
// order; it is the test double used throughout internal/elaborate's test
// suite and is also what a caller with no interest in live reporting
// (e.g. a single-shot CLI invocation) hands to the elaborator.
type SliceSink struct {
	Diagnostics []Diagnostic
}

func (s *SliceSink) Report(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// HasErrors reports whether any accumulated diagnostic has Error severity.
func (s *SliceSink) HasErrors() bool {
	for _, d := range s.Diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// SinkFunc adapts a plain function to the Sink interface, for callers
// that want to stream diagnostics (e.g. straight to a renderer) without
// defining their own type.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }
