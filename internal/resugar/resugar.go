// Package resugar converts core terms back into surface terms, reversing
// some (but not all) parts of elaboration, so that "expected X, found Y"
// diagnostics can print a core term the way a user would have written it
// rather than inventing a second, core-specific pretty-printer.
//
// Universes, variables, globals, items, annotations, literals, boolean
// and integer eliminations and the error sentinel are translated.
// Anything else, including the interval type every integer-checked
// position carries (U8 renders as `<Int[0, 255]>`), falls back to the
// term's own String() wrapped in angle brackets.
package resugar

import (
	"fmt"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

// FromTerm resugars a single core term.
func FromTerm(t core.Term) surface.Term {
	switch t := t.(type) {
	case *core.Universe:
		switch t.Sort {
		case core.Format:
			return &surface.Name{Ident: "Format"}
		case core.Kind:
			return &surface.Name{Ident: "Kind"}
		default:
			return &surface.Name{Ident: "Type"}
		}

	case *core.Var:
		return &surface.Name{Ident: t.Name.String()}

	case *core.Global:
		return &surface.Name{Ident: t.Name}

	case *core.Item:
		return &surface.Name{Ident: string(t.Label)}

	case *core.Ann:
		return &surface.Ann{Expr: FromTerm(t.Expr), Type: FromTerm(t.Type)}

	case *core.Lit:
		return &surface.NumberLiteral{Digits: t.Value.String()}

	case *core.BoolElim:
		return &surface.If{Cond: FromTerm(t.Cond), IfTrue: FromTerm(t.IfTrue), IfFalse: FromTerm(t.IfFalse)}

	case *core.IntElim:
		clauses := make([]surface.MatchClause, 0, len(t.Branches)+1)
		for _, b := range t.Branches {
			clauses = append(clauses, surface.MatchClause{
				Pattern: &surface.NumberPattern{Digits: b.Value.String()},
				Body:    FromTerm(b.Body),
			})
		}
		clauses = append(clauses, surface.MatchClause{
			Pattern: &surface.NamePattern{Ident: "_"},
			Body:    FromTerm(t.Default),
		})
		return &surface.Match{Scrutinee: FromTerm(t.Scrutinee), Clauses: clauses}

	case *core.Error:
		return &surface.Error{}

	default:
		// Pi/Lam/App/Proj/Record/RecordType/RecordTypeEmpty/Array/Extern/
		// IntType have no surface counterpart here. IntType does reach
		// diagnostics (LiteralOutOfRange, TypeMismatch against a sized
		// integer); it and the rest fall back to the core term's own
		// rendering.
		return &surface.Name{Ident: fmt.Sprintf("<%s>", t.String())}
	}
}

// FromValue quotes v back to a core term and resugars the result; this is
// the form diagnostics actually call, since elaboration deals in values
// (Pi-bound parameter types, normalized field types) rather than terms.
func FromValue(v value.Value) surface.Term {
	return FromTerm(value.Quote(v))
}

// Pretty renders v the way a user would have written it, for embedding in
// a diagnostic message.
func Pretty(v value.Value) string {
	return FromValue(v).String()
}
