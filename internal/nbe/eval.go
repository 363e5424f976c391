// Package nbe implements normalization by evaluation over core.Term: the
// evaluator that turns a core term into a value.Value, alpha-equality and
// interval subtyping over values, and the quote-driven substitution used
// to perform beta and iota reduction.
//
// Every binder body (value.Pi.Body, value.Lambda.Body, value.RecordType.Rest,
// value.Record.Rest) is evaluated eagerly, under a fresh opaque free
// variable standing in for the not-yet-supplied argument. This means a
// value.Value is always already in full normal form: there is no separate
// weak-head-only representation to force later. Substituting a concrete
// argument for that free variable — the beta/iota step — is performed by
// quoting the pre-normalized body back to a core.Term (value.Quote),
// extending the environment's Definitions map with the free variable, and
// normalizing again (see instantiate). This trades a dedicated
// value-substitution pass for one extra quote/eval round trip, which is
// the same technique value.Quote's own doc comment describes from the
// opposite direction.
package nbe

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// Normalize evaluates term to a fully normal value.
func Normalize(env *tcenv.Env, term core.Term) (value.Value, error) {
	return eval(env, nil, term)
}

func extend(locals []value.Value, v value.Value) []value.Value {
	out := make([]value.Value, len(locals)+1)
	copy(out, locals)
	out[len(locals)] = v
	return out
}

func eval(env *tcenv.Env, locals []value.Value, term core.Term) (value.Value, error) {
	switch t := term.(type) {
	case *core.Universe:
		return &value.Universe{Sort: t.Sort, Level: t.Level}, nil

	case *core.Var:
		if t.Name.IsBound() {
			idx := int(t.Name.Index())
			if idx < 0 || idx >= len(locals) {
				return nil, internalErr(ErrUnsubstitutedBoundIndex, t.Span(), t.Name.String())
			}
			return locals[len(locals)-1-idx], nil
		}
		if def, ok := env.Definition(t.Name); ok {
			return eval(env, nil, def)
		}
		return value.NeutralVar(t.Name), nil

	case *core.Global:
		g, ok := env.Global(t.Name)
		if ok && g.Value != nil {
			return g.Value, nil
		}
		return value.NeutralGlobal(t.Name), nil

	case *core.Item:
		label := string(t.Label)
		g, ok := env.Item(label)
		if ok && g.Value != nil {
			return g.Value, nil
		}
		return value.NeutralGlobal(label), nil

	case *core.Ann:
		return eval(env, locals, t.Expr)

	case *core.Pi:
		paramTypeV, err := eval(env, locals, t.ParamType)
		if err != nil {
			return nil, err
		}
		fresh := ident.Fresh(t.Param.Hint())
		bodyV, err := eval(env, extend(locals, value.NeutralVar(fresh)), t.Body)
		if err != nil {
			return nil, err
		}
		return &value.Pi{Param: fresh, ParamType: paramTypeV, Body: bodyV}, nil

	case *core.Lam:
		paramTypeV, err := eval(env, locals, t.ParamType)
		if err != nil {
			return nil, err
		}
		fresh := ident.Fresh(t.Param.Hint())
		bodyV, err := eval(env, extend(locals, value.NeutralVar(fresh)), t.Body)
		if err != nil {
			return nil, err
		}
		return &value.Lambda{Param: fresh, ParamType: paramTypeV, Body: bodyV}, nil

	case *core.App:
		fnV, err := eval(env, locals, t.Func)
		if err != nil {
			return nil, err
		}
		argV, err := eval(env, locals, t.Arg)
		if err != nil {
			return nil, err
		}
		return apply(env, t.Span(), fnV, argV)

	case *core.RecordType:
		fieldTypeV, err := eval(env, locals, t.FieldType)
		if err != nil {
			return nil, err
		}
		fresh := ident.Fresh(t.Binder.Hint())
		restV, err := eval(env, extend(locals, value.NeutralVar(fresh)), t.Rest)
		if err != nil {
			return nil, err
		}
		return &value.RecordType{Label: t.Label, Binder: fresh, FieldType: fieldTypeV, Rest: restV}, nil

	case *core.RecordTypeEmpty:
		return &value.RecordTypeEmpty{}, nil

	case *core.Record:
		fieldValueV, err := eval(env, locals, t.Value)
		if err != nil {
			return nil, err
		}
		fresh := ident.Fresh(t.Binder.Hint())
		restV, err := eval(env, extend(locals, value.NeutralVar(fresh)), t.Rest)
		if err != nil {
			return nil, err
		}
		return &value.Record{Label: t.Label, Binder: fresh, FieldValue: fieldValueV, Rest: restV}, nil

	case *core.RecordEmpty:
		return &value.RecordEmpty{}, nil

	case *core.Proj:
		exprV, err := eval(env, locals, t.Expr)
		if err != nil {
			return nil, err
		}
		return project(env, t.Span(), exprV, t.Label)

	case *core.BoolElim:
		condV, err := eval(env, locals, t.Cond)
		if err != nil {
			return nil, err
		}
		trueV, err := eval(env, locals, t.IfTrue)
		if err != nil {
			return nil, err
		}
		falseV, err := eval(env, locals, t.IfFalse)
		if err != nil {
			return nil, err
		}
		switch c := condV.(type) {
		case *value.Literal:
			if c.Value.Kind != literal.KindBool {
				return nil, internalErr(ErrExpectedBoolExpr, t.Span(), c.Value.String())
			}
			if c.Value.B {
				return trueV, nil
			}
			return falseV, nil
		case *value.Neutral:
			return c.WithElim(value.ElimIf{IfTrue: trueV, IfFalse: falseV}), nil
		default:
			return nil, internalErr(ErrExpectedBoolExpr, t.Span(), "")
		}

	case *core.IntElim:
		scrutineeV, err := eval(env, locals, t.Scrutinee)
		if err != nil {
			return nil, err
		}
		switch s := scrutineeV.(type) {
		case *value.Literal:
			if s.Value.Kind != literal.KindInt {
				return nil, internalErr(ErrNoPatternApplicable, t.Span(), s.Value.String())
			}
			if body, ok := t.Lookup(s.Value.I); ok {
				return eval(env, locals, body)
			}
			return eval(env, locals, t.Default)
		case *value.Neutral:
			clauses := make([]value.ElimCaseClause, 0, len(t.Branches)+1)
			for _, b := range t.Branches {
				bodyV, err := eval(env, locals, b.Body)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, value.ElimCaseClause{
					Pattern: &core.LiteralPattern{Value: literal.Int(b.Value)},
					Body:    bodyV,
				})
			}
			defaultV, err := eval(env, locals, t.Default)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, value.ElimCaseClause{
				Pattern: &core.BinderPattern{Name: ident.Fresh("_")},
				Body:    defaultV,
			})
			return s.WithElim(value.ElimCase{Clauses: clauses}), nil
		default:
			return nil, internalErr(ErrNoPatternApplicable, t.Span(), "")
		}

	case *core.IntType:
		var minV, maxV value.Value
		var err error
		if t.Min != nil {
			minV, err = eval(env, locals, t.Min)
			if err != nil {
				return nil, err
			}
		}
		if t.Max != nil {
			maxV, err = eval(env, locals, t.Max)
			if err != nil {
				return nil, err
			}
		}
		return &value.IntType{Min: minV, Max: maxV}, nil

	case *core.Array:
		elems := make([]value.Value, len(t.Elems))
		for i, e := range t.Elems {
			v, err := eval(env, locals, e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &value.Array{Elements: elems}, nil

	case *core.Extern:
		typeV, err := eval(env, locals, t.Type)
		if err != nil {
			return nil, err
		}
		return value.NeutralExtern(t.Name, typeV), nil

	case *core.Lit:
		return &value.Literal{Value: t.Value}, nil

	case *core.Error:
		return value.NeutralGlobal("<error>"), nil

	default:
		return nil, internalErr(ErrUnsubstitutedBoundIndex, term.Span(), "unhandled term kind")
	}
}

// instantiate substitutes arg for the free variable param inside the
// pre-normalized value body, by quoting body back to a term, recording
// param's definition, and normalizing the result again.
func instantiate(env *tcenv.Env, param ident.Name, body value.Value, arg value.Value) (value.Value, error) {
	env2 := env.WithDefinition(param, value.Quote(arg))
	return eval(env2, nil, value.Quote(body))
}

func apply(env *tcenv.Env, sp span.Span, fn value.Value, arg value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Lambda:
		return instantiate(env, f.Param, f.Body, arg)
	case *value.Neutral:
		n := f.WithElim(value.ElimApp{Arg: arg})
		if f.Head.Kind == value.HeadExtern {
			if prim, ok := env.Primitives.Get(f.Head.ExternName); ok {
				if args, ok := appArgs(n, prim.Arity); ok {
					if result, ok := prim.Interpret(args); ok {
						return result, nil
					}
				}
			}
		}
		return n, nil
	default:
		return nil, internalErr(ErrArgumentAppliedToNonFunction, sp, "")
	}
}

// appArgs collects the Arg of every ElimApp entry of a neutral's spine,
// in application order, returning ok=false unless the spine consists of
// exactly count applications.
func appArgs(n *value.Neutral, count int) ([]value.Value, bool) {
	if len(n.Spine) != count {
		return nil, false
	}
	args := make([]value.Value, count)
	for i := 0; i < count; i++ {
		elim := n.Spine[len(n.Spine)-count+i]
		app, ok := elim.(value.ElimApp)
		if !ok {
			return nil, false
		}
		args[i] = app.Arg
	}
	return args, true
}

func project(env *tcenv.Env, sp span.Span, v value.Value, label ident.Label) (value.Value, error) {
	for {
		switch r := v.(type) {
		case *value.Record:
			if r.Label == label {
				return r.FieldValue, nil
			}
			rest, err := instantiate(env, r.Binder, r.Rest, r.FieldValue)
			if err != nil {
				return nil, err
			}
			v = rest
		case *value.RecordEmpty:
			return nil, internalErr(ErrProjectedNonExistentField, sp, string(label))
		case *value.Neutral:
			return r.WithElim(value.ElimProj{Label: label}), nil
		default:
			return nil, internalErr(ErrProjectedNonExistentField, sp, string(label))
		}
	}
}
