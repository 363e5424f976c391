package elaborate

import (
	"math/big"
	"strconv"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/value"
)

// identKind distinguishes the three places resolveIdent can find a name.
type identKind int

const (
	identNotFound identKind = iota
	identLocal
	identItem
	identGlobal
)

// resolveIdent looks a bare identifier up against the local scope, the
// module's already-elaborated items, and its pre-declared globals, in
// that order, so a local shadows an item which shadows a global.
func resolveIdent(ctx *TermContext, name string) (identKind, ident.Name, value.Value, bool) {
	if n, ty, ok := ctx.Locals.lookup(name); ok {
		return identLocal, n, ty, true
	}
	if g, ok := ctx.Env.Item(name); ok {
		return identItem, ident.Name{}, g.Type, true
	}
	if g, ok := ctx.Env.Global(name); ok {
		return identGlobal, ident.Name{}, g.Type, true
	}
	return identNotFound, ident.Name{}, nil, false
}

// buildIdentTerm reconstructs the core.Term a successful resolveIdent
// stands for, now that the caller has a concrete span to attach.
func buildIdentTerm(sp span.Span, kind identKind, name string, boundName ident.Name) core.Term {
	switch kind {
	case identLocal:
		return core.NewVar(sp, boundName)
	case identItem:
		return core.NewItem(sp, ident.Label(name))
	case identGlobal:
		return core.NewGlobal(sp, name)
	default:
		return core.NewError(sp)
	}
}

// isBoolType reports whether ty is the Bool global value.
func isBoolType(ty value.Value) bool {
	name, ok := value.GlobalApp(ty)
	return ok && name == "Bool"
}

// isFloatGlobal reports whether ty names F32 or F64 (or one of the
// endian-tagged float globals, which elaborate to the same bare name
// since they carry no Value of their own in tcenv.Default).
func isFloatGlobal(ty value.Value) (string, bool) {
	name, ok := value.GlobalApp(ty)
	if !ok {
		return "", false
	}
	switch name {
	case "F32", "F32Le", "F32Be":
		return "F32", true
	case "F64", "F64Le", "F64Be":
		return "F64", true
	}
	return "", false
}

// literalDecision distinguishes why decideNumberLiteral could not produce
// a constant from why it succeeded, so callers can pick between the
// "try adding an annotation" diagnostics and the distinct out-of-range
// one.
type literalDecision int

const (
	literalOK literalDecision = iota
	literalAmbiguous
	literalOutOfRange
)

// decideNumberLiteral interprets digits under an expected type, the way
// check-mode NumberLiteral elaboration does: an IntType expectation
// parses an arbitrary-precision integer and range-checks it against the
// interval's bounds, a float global expectation parses a float of the
// matching width.
func decideNumberLiteral(expected value.Value, digits string) (literal.Constant, literalDecision) {
	if intTy, ok := expected.(*value.IntType); ok {
		i, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return literal.Constant{}, literalAmbiguous
		}
		if !intWithinBounds(i, intTy) {
			return literal.Constant{}, literalOutOfRange
		}
		return literal.Int(i), literalOK
	}
	if width, ok := isFloatGlobal(expected); ok {
		bits := 64
		if width == "F32" {
			bits = 32
		}
		f, err := strconv.ParseFloat(digits, bits)
		if err != nil {
			return literal.Constant{}, literalAmbiguous
		}
		if width == "F32" {
			return literal.F32(float32(f)), literalOK
		}
		return literal.F64(f), literalOK
	}
	return literal.Constant{}, literalAmbiguous
}

// intWithinBounds reports whether i falls inside ty's inclusive bounds,
// treating a nil bound as the corresponding infinity — the same
// comparison nbe.IsSubtype uses for interval containment, inlined here
// since ty's bounds are literal values and i is not yet a value.Value.
func intWithinBounds(i *big.Int, ty *value.IntType) bool {
	if ty.Min != nil {
		lo, ok := value.IntBound(ty.Min)
		if ok && i.Cmp(lo) < 0 {
			return false
		}
	}
	if ty.Max != nil {
		hi, ok := value.IntBound(ty.Max)
		if ok && i.Cmp(hi) > 0 {
			return false
		}
	}
	return true
}
