package elaborate

import (
	"fmt"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/module"
	"github.com/jtojnar/fathom/internal/nbe"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// Validate independently re-checks an already-elaborated module's core
// terms against their recorded types, using a standalone inferCore
// rather than reusing Check/Synth. Agreement between Validate and the
// elaborator that produced m is the module-level proof of soundness this
// module's tests rely on (property 1: elaboration and validation never
// disagree) — Validate deliberately does not share code with Check/Synth
// so that a bug in one is unlikely to be masked by the same bug in the
// other.
func Validate(m *module.Module) error {
	env := tcenv.Default()
	for _, item := range m.Items {
		switch item := item.(type) {
		case *module.Alias:
			declared, err := nbe.Normalize(env, item.Type)
			if err != nil {
				return fmt.Errorf("alias %s: type does not normalize: %w", item.Name, err)
			}
			actual, err := inferCore(env, item.Term)
			if err != nil {
				return fmt.Errorf("alias %s: %w", item.Name, err)
			}
			if !nbe.IsSubtype(env, actual, declared) {
				return fmt.Errorf("alias %s: term has type %s, declared type is %s", item.Name, actual, declared)
			}
			termValue, err := nbe.Normalize(env, item.Term)
			if err != nil {
				return fmt.Errorf("alias %s: term does not normalize: %w", item.Name, err)
			}
			env = env.WithItem(item.Name, tcenv.Global{Value: termValue, Type: declared})

		case *module.Struct:
			ty, err := inferCore(env, item.Type)
			if err != nil {
				return fmt.Errorf("struct %s: %w", item.Name, err)
			}
			if _, ok := ty.(*value.Universe); !ok {
				return fmt.Errorf("struct %s: record type classified by non-universe %s", item.Name, ty)
			}
			typeValue, err := nbe.Normalize(env, item.Type)
			if err != nil {
				return fmt.Errorf("struct %s: type does not normalize: %w", item.Name, err)
			}
			env = env.WithItem(item.Name, tcenv.Global{Value: typeValue, Type: ty})
		}
	}
	return nil
}

// inferCore computes t's type from first principles, restricted to the
// term shapes the elaborator in this package actually produces (Pi, Lam,
// App, Proj, Record, Array and Extern are core-level constructs that
// internal/nbe's evaluator fully supports, but no surface form in this
// language's elaborator emits them, so they are intentionally absent
// here).
func inferCore(env *tcenv.Env, t core.Term) (value.Value, error) {
	switch t := t.(type) {
	case *core.Universe:
		return &value.Universe{Sort: core.Kind, Level: t.Level}, nil

	case *core.Var:
		ty, ok := env.Claim(t.Name)
		if !ok {
			return nil, fmt.Errorf("unbound variable %s", t.Name)
		}
		return ty, nil

	case *core.Global:
		g, ok := env.Global(t.Name)
		if !ok {
			return nil, fmt.Errorf("unknown global %s", t.Name)
		}
		return g.Type, nil

	case *core.Item:
		g, ok := env.Item(string(t.Label))
		if !ok {
			return nil, fmt.Errorf("unknown item %s", t.Label)
		}
		return g.Type, nil

	case *core.Ann:
		declared, err := nbe.Normalize(env, t.Type)
		if err != nil {
			return nil, err
		}
		actual, err := inferCore(env, t.Expr)
		if err != nil {
			return nil, err
		}
		if !nbe.IsSubtype(env, actual, declared) {
			return nil, fmt.Errorf("annotation mismatch: expected %s, found %s", declared, actual)
		}
		return declared, nil

	case *core.RecordTypeEmpty:
		return &value.Universe{Sort: core.Format, Level: 0}, nil

	case *core.RecordType:
		fieldSort, err := inferCore(env, t.FieldType)
		if err != nil {
			return nil, err
		}
		fieldUniverse, ok := fieldSort.(*value.Universe)
		if !ok {
			return nil, fmt.Errorf("record field %s: type is not itself classified by a universe", t.Label)
		}
		fieldValue, err := nbe.Normalize(env, t.FieldType)
		if err != nil {
			return nil, err
		}
		restEnv := env.WithClaim(t.Binder, fieldValue)
		restSort, err := inferCore(restEnv, t.Rest)
		if err != nil {
			return nil, err
		}
		restUniverse, ok := restSort.(*value.Universe)
		if !ok {
			return nil, fmt.Errorf("record tail after field %s is not classified by a universe", t.Label)
		}
		return combineUniverse(fieldUniverse, restUniverse), nil

	case *core.BoolElim:
		condTy, err := inferCore(env, t.Cond)
		if err != nil {
			return nil, err
		}
		if name, ok := value.GlobalApp(condTy); !ok || name != "Bool" {
			return nil, fmt.Errorf("if condition has non-Bool type %s", condTy)
		}
		trueTy, err := inferCore(env, t.IfTrue)
		if err != nil {
			return nil, err
		}
		falseTy, err := inferCore(env, t.IfFalse)
		if err != nil {
			return nil, err
		}
		if !nbe.Equal(env, trueTy, falseTy) {
			return nil, fmt.Errorf("if branches disagree: %s vs %s", trueTy, falseTy)
		}
		return trueTy, nil

	case *core.IntElim:
		scrutineeTy, err := inferCore(env, t.Scrutinee)
		if err != nil {
			return nil, err
		}
		if _, ok := scrutineeTy.(*value.IntType); !ok {
			return nil, fmt.Errorf("match scrutinee has non-integer type %s", scrutineeTy)
		}
		var resultTy value.Value
		for _, b := range t.Branches {
			bTy, err := inferCore(env, b.Body)
			if err != nil {
				return nil, err
			}
			if resultTy == nil {
				resultTy = bTy
			} else if !nbe.Equal(env, resultTy, bTy) {
				return nil, fmt.Errorf("match branches disagree: %s vs %s", resultTy, bTy)
			}
		}
		defTy, err := inferCore(env, t.Default)
		if err != nil {
			return nil, err
		}
		if resultTy == nil {
			resultTy = defTy
		} else if !nbe.Equal(env, resultTy, defTy) {
			return nil, fmt.Errorf("match default disagrees with branches: %s vs %s", resultTy, defTy)
		}
		return resultTy, nil

	case *core.Lit:
		switch t.Value.Kind {
		case literal.KindBool:
			return value.NeutralGlobal("Bool"), nil
		case literal.KindInt:
			return &value.IntType{Min: &value.Literal{Value: t.Value}, Max: &value.Literal{Value: t.Value}}, nil
		case literal.KindF32:
			return value.NeutralGlobal("F32"), nil
		case literal.KindF64:
			return value.NeutralGlobal("F64"), nil
		case literal.KindChar:
			return value.NeutralGlobal("Char"), nil
		case literal.KindString:
			return value.NeutralGlobal("String"), nil
		default:
			return nil, fmt.Errorf("literal of unknown kind")
		}

	case *core.Error:
		return value.NeutralGlobal("<error>"), nil

	default:
		return nil, fmt.Errorf("inferCore: unhandled term shape %T", t)
	}
}

// combineUniverse implements this three-sort language's simple universe
// join: Kind dominates Format, which dominates Type, mirroring the
// Sort/Level scheme core.MaxLevel already uses for levels alone.
func combineUniverse(a, b *value.Universe) *value.Universe {
	sort := a.Sort
	if b.Sort > sort {
		sort = b.Sort
	}
	return &value.Universe{Sort: sort, Level: core.MaxLevel(a.Level, b.Level)}
}
