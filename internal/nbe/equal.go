package nbe

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// Equal reports whether a and b are alpha-equal values. Binders are
// compared by instantiating both sides' bodies with one shared fresh
// variable, so the comparison never depends on which process-unique id
// each side's own binder happened to mint.
func Equal(env *tcenv.Env, a, b value.Value) bool {
	switch x := a.(type) {
	case *value.Universe:
		y, ok := b.(*value.Universe)
		return ok && x.Sort == y.Sort && x.Level == y.Level

	case *value.Pi:
		y, ok := b.(*value.Pi)
		if !ok || !Equal(env, x.ParamType, y.ParamType) {
			return false
		}
		fresh := ident.Fresh("eq")
		xBody, err1 := instantiate(env, x.Param, x.Body, value.NeutralVar(fresh))
		yBody, err2 := instantiate(env, y.Param, y.Body, value.NeutralVar(fresh))
		return err1 == nil && err2 == nil && Equal(env, xBody, yBody)

	case *value.Lambda:
		y, ok := b.(*value.Lambda)
		if !ok || !Equal(env, x.ParamType, y.ParamType) {
			return false
		}
		fresh := ident.Fresh("eq")
		xBody, err1 := instantiate(env, x.Param, x.Body, value.NeutralVar(fresh))
		yBody, err2 := instantiate(env, y.Param, y.Body, value.NeutralVar(fresh))
		return err1 == nil && err2 == nil && Equal(env, xBody, yBody)

	case *value.RecordType:
		y, ok := b.(*value.RecordType)
		if !ok || x.Label != y.Label || !Equal(env, x.FieldType, y.FieldType) {
			return false
		}
		fresh := ident.Fresh("eq")
		xRest, err1 := instantiate(env, x.Binder, x.Rest, value.NeutralVar(fresh))
		yRest, err2 := instantiate(env, y.Binder, y.Rest, value.NeutralVar(fresh))
		return err1 == nil && err2 == nil && Equal(env, xRest, yRest)

	case *value.RecordTypeEmpty:
		_, ok := b.(*value.RecordTypeEmpty)
		return ok

	case *value.Record:
		y, ok := b.(*value.Record)
		if !ok || x.Label != y.Label || !Equal(env, x.FieldValue, y.FieldValue) {
			return false
		}
		fresh := ident.Fresh("eq")
		xRest, err1 := instantiate(env, x.Binder, x.Rest, value.NeutralVar(fresh))
		yRest, err2 := instantiate(env, y.Binder, y.Rest, value.NeutralVar(fresh))
		return err1 == nil && err2 == nil && Equal(env, xRest, yRest)

	case *value.RecordEmpty:
		_, ok := b.(*value.RecordEmpty)
		return ok

	case *value.IntType:
		y, ok := b.(*value.IntType)
		if !ok {
			return false
		}
		return equalBound(env, x.Min, y.Min) && equalBound(env, x.Max, y.Max)

	case *value.Literal:
		y, ok := b.(*value.Literal)
		return ok && x.Value.Equal(y.Value)

	case *value.Array:
		y, ok := b.(*value.Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(env, x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true

	case *value.Neutral:
		y, ok := b.(*value.Neutral)
		if !ok || !equalHead(x.Head, y.Head, env) || len(x.Spine) != len(y.Spine) {
			return false
		}
		for i := range x.Spine {
			if !equalElim(env, x.Spine[i], y.Spine[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func equalBound(env *tcenv.Env, a, b value.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(env, a, b)
}

func equalHead(a, b value.Head, env *tcenv.Env) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case value.HeadVar:
		return a.Var.Equal(b.Var)
	case value.HeadGlobal:
		return a.Global == b.Global
	case value.HeadExtern:
		return a.ExternName == b.ExternName && Equal(env, a.ExternType, b.ExternType)
	default:
		return false
	}
}

func equalElim(env *tcenv.Env, a, b value.Elim) bool {
	switch x := a.(type) {
	case value.ElimApp:
		y, ok := b.(value.ElimApp)
		return ok && Equal(env, x.Arg, y.Arg)
	case value.ElimProj:
		y, ok := b.(value.ElimProj)
		return ok && x.Label == y.Label
	case value.ElimIf:
		y, ok := b.(value.ElimIf)
		return ok && Equal(env, x.IfTrue, y.IfTrue) && Equal(env, x.IfFalse, y.IfFalse)
	case value.ElimCase:
		y, ok := b.(value.ElimCase)
		if !ok || len(x.Clauses) != len(y.Clauses) {
			return false
		}
		for i := range x.Clauses {
			if !equalPattern(x.Clauses[i].Pattern, y.Clauses[i].Pattern) {
				return false
			}
			if !Equal(env, x.Clauses[i].Body, y.Clauses[i].Body) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalPattern(a, b core.Pattern) bool {
	switch x := a.(type) {
	case *core.LiteralPattern:
		y, ok := b.(*core.LiteralPattern)
		return ok && x.Value.Equal(y.Value)
	case *core.BinderPattern:
		_, ok := b.(*core.BinderPattern)
		return ok
	default:
		return false
	}
}
