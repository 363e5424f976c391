package elaborate

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/nbe"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

// Check elaborates a term against an expected type, returning the error
// sentinel (after reporting a diagnostic) on failure. Its special-cased
// branches (NumberLiteral, If, Match) push the expected type down into
// subterms that Synth alone could not give a precise enough type; every
// other surface form falls back to Synth plus a subtype check.
func Check(ctx *TermContext, t surface.Term, expected value.Value) core.Term {
	if name, ok := value.GlobalApp(expected); ok && name == "<error>" {
		// The expected type already failed and was reported; checking
		// against it would only add a cascading diagnostic.
		return core.NewError(t.Span())
	}
	switch t := t.(type) {
	case *surface.Paren:
		return Check(ctx, t.Inner, expected)

	case *surface.NumberLiteral:
		c, decision := decideNumberLiteral(expected, t.Digits)
		switch decision {
		case literalOK:
			return core.NewLit(t.Span(), c)
		case literalOutOfRange:
			ctx.Sink.Report(diagnostic.LiteralOutOfRange(t.Span(), expected))
			return core.NewError(t.Span())
		default:
			if _, isFloat := isFloatGlobal(expected); isFloat {
				ctx.Sink.Report(diagnostic.AmbiguousFloatLiteral(t.Span()))
			} else {
				ctx.Sink.Report(diagnostic.AmbiguousNumericLiteral(t.Span()))
			}
			return core.NewError(t.Span())
		}

	case *surface.If:
		condTerm := Check(ctx, t.Cond, value.NeutralGlobal("Bool"))
		trueTerm := Check(ctx, t.IfTrue, expected)
		falseTerm := Check(ctx, t.IfFalse, expected)
		return core.NewBoolElim(t.Span(), condTerm, trueTerm, falseTerm)

	case *surface.Match:
		return checkMatch(ctx, t, expected)

	case *surface.Error:
		return core.NewError(t.Span())

	default:
		term, ty := Synth(ctx, t)
		if core.IsError(term) {
			return term
		}
		if nbe.IsSubtype(ctx.Env, ty, expected) {
			return term
		}
		ctx.Sink.Report(diagnostic.TypeMismatch(t.Span(), expected, ty))
		return core.NewError(t.Span())
	}
}
