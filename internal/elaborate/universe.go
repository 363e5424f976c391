package elaborate

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

// ElaborateUniverse elaborates t in a position where a type (a term
// classified by some universe) is expected: the bare names Type, Format
// and Kind are recognised directly (unless shadowed by a local or item
// of that name), and everything else falls back to Synth, checked to
// have a Universe-classified type.
func ElaborateUniverse(ctx *TermContext, t surface.Term) core.Term {
	if n, ok := t.(*surface.Name); ok {
		if _, _, _, shadowed := resolveIdent(ctx, n.Ident); !shadowed {
			switch n.Ident {
			case "Type":
				return core.NewUniverse(t.Span(), core.Type, 0)
			case "Format":
				return core.NewUniverse(t.Span(), core.Format, 0)
			case "Kind":
				return core.NewUniverse(t.Span(), core.Kind, 0)
			}
		}
	}

	term, ty := Synth(ctx, t)
	if core.IsError(term) {
		return term
	}
	if _, ok := ty.(*value.Universe); ok {
		return term
	}
	ctx.Sink.Report(diagnostic.UniverseMismatch(t.Span(), ty))
	return core.NewError(t.Span())
}
