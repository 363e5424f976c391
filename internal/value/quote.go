package value

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/span"
)

// Quote reads a value back into a core term. It is the mirror image of
// normalization and is used to re-inject an already-evaluated value into
// a position where the evaluator expects a term — most importantly to
// drive the "substitute the free variable and re-normalize" step of beta
// and iota reduction without a separate value-level substitution pass:
// the binder's opaque free variable already occurs (as a neutral) inside
// a pre-normalized body, so quoting that body and normalizing it again
// under an environment that defines the free variable reproduces exactly
// the substitution-then-renormalize behaviour the evaluator specifies.
func Quote(v Value) core.Term {
	switch v := v.(type) {
	case *Universe:
		return core.NewUniverse(span.Zero, v.Sort, v.Level)
	case *Pi:
		return core.NewPi(span.Zero, v.Param, Quote(v.ParamType), Quote(v.Body))
	case *Lambda:
		return core.NewLam(span.Zero, v.Param, Quote(v.ParamType), Quote(v.Body))
	case *RecordType:
		return core.NewRecordType(span.Zero, v.Label, v.Binder, Quote(v.FieldType), Quote(v.Rest))
	case *RecordTypeEmpty:
		return core.NewRecordTypeEmpty(span.Zero)
	case *Record:
		return core.NewRecord(span.Zero, v.Label, v.Binder, Quote(v.FieldValue), Quote(v.Rest))
	case *RecordEmpty:
		return core.NewRecordEmpty(span.Zero)
	case *IntType:
		var min, max core.Term
		if v.Min != nil {
			min = Quote(v.Min)
		}
		if v.Max != nil {
			max = Quote(v.Max)
		}
		return core.NewIntType(span.Zero, min, max)
	case *Literal:
		return core.NewLit(span.Zero, v.Value)
	case *Array:
		elems := make([]core.Term, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Quote(e)
		}
		return core.NewArray(span.Zero, elems)
	case *Neutral:
		return quoteNeutral(v)
	default:
		panic("value: Quote: unhandled value kind")
	}
}

func quoteNeutral(n *Neutral) core.Term {
	var head core.Term
	switch n.Head.Kind {
	case HeadVar:
		head = core.NewVar(span.Zero, n.Head.Var)
	case HeadGlobal:
		head = core.NewGlobal(span.Zero, n.Head.Global)
	case HeadExtern:
		head = core.NewExtern(span.Zero, n.Head.ExternName, Quote(n.Head.ExternType))
	default:
		panic("value: quoteNeutral: unhandled head kind")
	}

	for _, elim := range n.Spine {
		switch e := elim.(type) {
		case ElimApp:
			head = core.NewApp(span.Zero, head, Quote(e.Arg))
		case ElimProj:
			head = core.NewProj(span.Zero, head, e.Label)
		case ElimIf:
			head = core.NewBoolElim(span.Zero, head, Quote(e.IfTrue), Quote(e.IfFalse))
		case ElimCase:
			// The evaluator queues a Case eliminator for an IntElim whose
			// scrutinee is neutral (a neutral boolean scrutinee queues
			// ElimIf instead). quoteCase rebuilds a BoolElim when every
			// clause is a boolean literal pattern and both sides are
			// present, and an IntElim otherwise.
			head = quoteCase(head, e.Clauses)
		default:
			panic("value: quoteNeutral: unhandled eliminator kind")
		}
	}
	return head
}

func quoteCase(scrutinee core.Term, clauses []ElimCaseClause) core.Term {
	var trueBody, falseBody core.Term
	isBool := true
	for _, c := range clauses {
		lit, ok := c.Pattern.(*core.LiteralPattern)
		if ok && lit.Value.Kind == literal.KindBool {
			if lit.Value.B {
				trueBody = Quote(c.Body)
			} else {
				falseBody = Quote(c.Body)
			}
			continue
		}
		isBool = false
		break
	}
	if isBool && trueBody != nil && falseBody != nil {
		return core.NewBoolElim(span.Zero, scrutinee, trueBody, falseBody)
	}

	var branches []core.IntBranch
	var def core.Term
	for _, c := range clauses {
		switch p := c.Pattern.(type) {
		case *core.LiteralPattern:
			branches = append(branches, core.IntBranch{Value: p.Value.I, Body: Quote(c.Body)})
		case *core.BinderPattern:
			def = Quote(c.Body)
		}
	}
	if def == nil {
		def = core.NewError(span.Zero)
	}
	return core.NewIntElim(span.Zero, scrutinee, branches, def)
}
