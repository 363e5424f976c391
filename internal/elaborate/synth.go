package elaborate

import (
	"math/big"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/nbe"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

// Synth infers a term's type, returning the elaborated core term and its
// type as a value. On failure it reports a diagnostic and returns the
// error sentinel term paired with errorValue, so callers never need to
// special-case a nil type.
func Synth(ctx *TermContext, t surface.Term) (core.Term, value.Value) {
	switch t := t.(type) {
	case *surface.Paren:
		return Synth(ctx, t.Inner)

	case *surface.Ann:
		typeTerm := ElaborateUniverse(ctx, t.Type)
		if core.IsError(typeTerm) {
			return core.NewError(t.Span()), errorValue
		}
		typeValue, err := nbe.Normalize(ctx.Env, typeTerm)
		if err != nil {
			return core.NewError(t.Span()), errorValue
		}
		exprTerm := Check(ctx, t.Expr, typeValue)
		return core.NewAnn(t.Span(), exprTerm, typeTerm), typeValue

	case *surface.Name:
		switch t.Ident {
		case "Type", "Format":
			if _, _, _, shadowed := resolveIdent(ctx, t.Ident); !shadowed {
				sort := core.Type
				if t.Ident == "Format" {
					sort = core.Format
				}
				return core.NewUniverse(t.Span(), sort, 0), &value.Universe{Sort: core.Kind, Level: 0}
			}
		case "Kind":
			if _, _, _, shadowed := resolveIdent(ctx, t.Ident); !shadowed {
				return core.NewUniverse(t.Span(), core.Kind, 0), &value.Universe{Sort: core.Kind, Level: 0}
			}
		}
		kind, boundName, ty, ok := resolveIdent(ctx, t.Ident)
		if !ok {
			ctx.Sink.Report(diagnostic.UndefinedName(t.Span(), t.Ident))
			return core.NewError(t.Span()), errorValue
		}
		return buildIdentTerm(t.Span(), kind, t.Ident, boundName), ty

	case *surface.NumberLiteral:
		// An integer literal without an expected type synthesizes to the
		// singleton interval IntType(n,n); a literal that does not parse
		// as a plain integer (it carries a decimal point or exponent) is
		// ambiguous without a float width to check against. This
		// asymmetry is intentional: floats never synthesize, integers
		// always do.
		i, ok := new(big.Int).SetString(t.Digits, 10)
		if !ok {
			ctx.Sink.Report(diagnostic.AmbiguousFloatLiteral(t.Span()))
			return core.NewError(t.Span()), errorValue
		}
		lit := literal.Int(i)
		boundValue := &value.Literal{Value: lit}
		return core.NewLit(t.Span(), lit), &value.IntType{Min: boundValue, Max: boundValue}

	case *surface.If:
		condTerm := Check(ctx, t.Cond, value.NeutralGlobal("Bool"))
		trueTerm, trueTy := Synth(ctx, t.IfTrue)
		falseTerm, falseTy := Synth(ctx, t.IfFalse)
		if core.IsError(trueTerm) || core.IsError(falseTerm) {
			return core.NewError(t.Span()), errorValue
		}
		if !nbe.Equal(ctx.Env, trueTy, falseTy) {
			ctx.Sink.Report(diagnostic.TypeMismatch(t.IfFalse.Span(), trueTy, falseTy))
			return core.NewError(t.Span()), errorValue
		}
		return core.NewBoolElim(t.Span(), condTerm, trueTerm, falseTerm), trueTy

	case *surface.Match:
		ctx.Sink.Report(diagnostic.AmbiguousCase(t.Span()))
		return core.NewError(t.Span()), errorValue

	case *surface.Error:
		return core.NewError(t.Span()), errorValue

	default:
		ctx.Sink.Report(diagnostic.UndefinedName(t.Span(), "<unsupported term>"))
		return core.NewError(t.Span()), errorValue
	}
}
