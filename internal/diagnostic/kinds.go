package diagnostic

import (
	"fmt"

	"github.com/jtojnar/fathom/internal/resugar"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/value"
)

// Each constructor below corresponds to one of the error/warning kinds
// the elaborator can report, named as a Go function rather than kept as
// a free-form message string so tests can assert against a stable code.

func UndefinedName(sp span.Span, name string) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB001",
		Message:  fmt.Sprintf("cannot find `%s` in this scope", name),
		Primary:  Label{Span: sp},
	}
}

func ItemRedefinition(sp span.Span, label string, first span.Span) Diagnostic {
	return Diagnostic{
		Severity:  Error,
		Code:      "ELAB002",
		Message:   fmt.Sprintf("the item `%s` is defined multiple times", label),
		Primary:   Label{Span: sp},
		Secondary: []Label{{Span: first, Message: "first definition here"}},
	}
}

func FieldRedeclaration(sp span.Span, label string, first span.Span) Diagnostic {
	return Diagnostic{
		Severity:  Error,
		Code:      "ELAB003",
		Message:   fmt.Sprintf("the field `%s` is declared multiple times", label),
		Primary:   Label{Span: sp},
		Secondary: []Label{{Span: first, Message: "first declaration here"}},
	}
}

func TypeMismatch(sp span.Span, expected, found value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB004",
		Message:  fmt.Sprintf("expected type `%s`, found `%s`", resugar.Pretty(expected), resugar.Pretty(found)),
		Primary:  Label{Span: sp},
	}
}

func UniverseMismatch(sp span.Span, found value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB005",
		Message:  fmt.Sprintf("expected a type, found a term of type `%s`", resugar.Pretty(found)),
		Primary:  Label{Span: sp},
	}
}

func ArgAppliedToNonFunction(sp span.Span, found value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB006",
		Message:  fmt.Sprintf("applied an argument to a non-function value of type `%s`", resugar.Pretty(found)),
		Primary:  Label{Span: sp},
	}
}

func NoFieldInType(sp span.Span, label string, recordType value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB007",
		Message:  fmt.Sprintf("no field `%s` in type `%s`", label, resugar.Pretty(recordType)),
		Primary:  Label{Span: sp},
	}
}

func LabelMismatch(sp span.Span, expected, found string) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB008",
		Message:  fmt.Sprintf("expected field `%s`, found `%s`", expected, found),
		Primary:  Label{Span: sp},
	}
}

func AmbiguousRecord(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB009",
		Message:  "cannot infer the type of this record — try adding an annotation",
		Primary:  Label{Span: sp},
	}
}

// AmbiguousCase fires for a checked `match` with an empty clause list,
// and for every `match` in synthesis position: Synth does not infer a
// match expression's type, whatever its clauses (renamed from the
// original "empty case" wording).
func AmbiguousCase(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB010",
		Message:  "cannot infer the type of this match expression",
		Primary:  Label{Span: sp},
	}
}

func AmbiguousNumericLiteral(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB011",
		Message:  "cannot infer the type of this numeric literal — try adding an annotation",
		Primary:  Label{Span: sp},
	}
}

func AmbiguousFloatLiteral(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB012",
		Message:  "cannot infer the type of this floating-point literal — try adding an annotation",
		Primary:  Label{Span: sp},
	}
}

func UnsupportedPatternType(sp span.Span, found value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB013",
		Message:  fmt.Sprintf("pattern matching is not supported for type `%s`", resugar.Pretty(found)),
		Primary:  Label{Span: sp},
	}
}

func NoDefaultPattern(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB014",
		Message:  "match expression is missing a default (wildcard) clause",
		Primary:  Label{Span: sp},
	}
}

// UnreachablePattern is a Warning: the clause can never be selected
// because an earlier clause already covers its value.
func UnreachablePattern(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Warning,
		Code:     "ELAB015",
		Message:  "this pattern is unreachable",
		Primary:  Label{Span: sp},
	}
}

func UnableToElaborateHole(sp span.Span, expected value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB016",
		Message:  fmt.Sprintf("unable to elaborate hole of expected type `%s`", resugar.Pretty(expected)),
		Primary:  Label{Span: sp},
	}
}

func FunctionParamNeedsAnnotation(sp span.Span) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB017",
		Message:  "cannot infer the type of this function parameter — try adding an annotation",
		Primary:  Label{Span: sp},
	}
}

// LiteralOutOfRange fires when an integer literal parses cleanly but
// falls outside the bounds of the interval type it is checked against
// (e.g. `256` checked against `U8`).
func LiteralOutOfRange(sp span.Span, expected value.Value) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     "ELAB018",
		Message:  fmt.Sprintf("literal out of range for type `%s`", resugar.Pretty(expected)),
		Primary:  Label{Span: sp},
	}
}
