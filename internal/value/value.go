// Package value defines the normal-form counterpart of core.Term: the
// values produced by the evaluator, including neutral values whose
// reduction is stuck on an unknown variable, global, or primitive
// application.
package value

import (
	"fmt"
	"math/big"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
)

// Value is the sealed sum type of normal-form values. Values are
// immutable once constructed and are never mutated after normalization.
type Value interface {
	String() string
	isValue()
}

// Universe is a universe value.
type Universe struct {
	Sort  core.Sort
	Level core.Level
}

func (*Universe) isValue() {}
func (u *Universe) String() string { return fmt.Sprintf("%s^%s", u.Sort, u.Level) }

// Pi is a dependent function type. Body is the codomain pre-normalized
// under the opaque free variable Param; internal/nbe's instantiate
// substitutes a concrete argument for it.
type Pi struct {
	Param     ident.Name
	ParamType Value
	Body      Value
}

func (*Pi) isValue() {}
func (p *Pi) String() string { return fmt.Sprintf("(%s : %s) -> %s", p.Param, p.ParamType, p.Body) }

// Lambda is a function value. Body is pre-normalized under the opaque
// free variable Param, exactly like Pi.Body.
type Lambda struct {
	Param     ident.Name
	ParamType Value
	Body      Value
}

func (*Lambda) isValue() {}
func (l *Lambda) String() string {
	return fmt.Sprintf("\\(%s : %s) => %s", l.Param, l.ParamType, l.Body)
}

// RecordType is one field of a dependent record type value. Rest is
// pre-normalized under the opaque free variable Binder.
type RecordType struct {
	Label     ident.Label
	Binder    ident.Name
	FieldType Value
	Rest      Value
}

func (*RecordType) isValue() {}
func (r *RecordType) String() string {
	return fmt.Sprintf("{%s : %s, %s}", r.Label, r.FieldType, r.Rest)
}

// RecordTypeEmpty is the empty record type value.
type RecordTypeEmpty struct{}

func (*RecordTypeEmpty) isValue() {}
func (*RecordTypeEmpty) String() string { return "{}" }

// Record is one field of a record value. Rest is pre-normalized under the
// opaque free variable Binder.
type Record struct {
	Label      ident.Label
	Binder     ident.Name
	FieldValue Value
	Rest       Value
}

func (*Record) isValue() {}
func (r *Record) String() string {
	return fmt.Sprintf("{%s = %s, %s}", r.Label, r.FieldValue, r.Rest)
}

// RecordEmpty is the empty record value.
type RecordEmpty struct{}

func (*RecordEmpty) isValue() {}
func (*RecordEmpty) String() string { return "{}" }

// IntType is an integer interval type value; either bound may be nil.
type IntType struct {
	Min Value
	Max Value
}

func (*IntType) isValue() {}
func (t *IntType) String() string {
	min, max := "-inf", "+inf"
	if t.Min != nil {
		min = t.Min.String()
	}
	if t.Max != nil {
		max = t.Max.String()
	}
	return fmt.Sprintf("Int[%s, %s]", min, max)
}

// IntBound extracts the big.Int carried by a literal IntType bound value,
// if bound is a literal integer. Non-literal bounds (still-neutral
// expressions) return ok=false and the caller falls back to alpha-equality.
func IntBound(bound Value) (*big.Int, bool) {
	lit, ok := bound.(*Literal)
	if !ok || lit.Value.Kind != literal.KindInt {
		return nil, false
	}
	return lit.Value.I, true
}

// Literal is a literal constant value.
type Literal struct {
	Value literal.Constant
}

func (*Literal) isValue() {}
func (l *Literal) String() string { return l.Value.String() }

// Array is an array value.
type Array struct {
	Elements []Value
}

func (*Array) isValue() {}
func (a *Array) String() string { return fmt.Sprintf("%v", a.Elements) }

// HeadKind distinguishes the three ways a Neutral can be stuck.
type HeadKind int

const (
	HeadVar HeadKind = iota
	HeadGlobal
	HeadExtern
)

// Head is the stuck head of a Neutral value.
type Head struct {
	Kind       HeadKind
	Var        ident.Name // HeadVar
	Global     string     // HeadGlobal
	ExternName string     // HeadExtern
	ExternType Value      // HeadExtern
}

func (h Head) String() string {
	switch h.Kind {
	case HeadVar:
		return h.Var.String()
	case HeadGlobal:
		return h.Global
	case HeadExtern:
		return fmt.Sprintf("extern %s", h.ExternName)
	default:
		return "<invalid head>"
	}
}

// Elim is one eliminator queued on top of a Neutral's stuck head.
type Elim interface {
	isElim()
	String() string
}

// ElimApp is a queued function application.
type ElimApp struct{ Arg Value }

func (ElimApp) isElim() {}
func (e ElimApp) String() string { return fmt.Sprintf("(%s)", e.Arg) }

// ElimProj is a queued field projection.
type ElimProj struct{ Label ident.Label }

func (ElimProj) isElim() {}
func (e ElimProj) String() string { return fmt.Sprintf(".%s", e.Label) }

// ElimIf is a queued boolean elimination; both branches are normalized
// eagerly even though the scrutinee is stuck.
type ElimIf struct {
	IfTrue  Value
	IfFalse Value
}

func (ElimIf) isElim() {}
func (e ElimIf) String() string { return fmt.Sprintf("(if _ then %s else %s)", e.IfTrue, e.IfFalse) }

// ElimCaseClause is one normalized clause of a queued Case eliminator.
type ElimCaseClause struct {
	Pattern core.Pattern
	Body    Value
}

// ElimCase is a queued case analysis over core.Pattern clauses (queued by
// an integer case expression once its scrutinee is neutral; a boolean
// elimination queues ElimIf instead).
type ElimCase struct {
	Clauses []ElimCaseClause
}

func (ElimCase) isElim() {}
func (e ElimCase) String() string { return fmt.Sprintf("(match _ { %d clauses })", len(e.Clauses)) }

// Neutral is a value whose reduction is stuck on an unknown head, with a
// spine of eliminators queued on top.
type Neutral struct {
	Head  Head
	Spine []Elim
}

func (*Neutral) isValue() {}
func (n *Neutral) String() string {
	s := n.Head.String()
	for _, e := range n.Spine {
		s += e.String()
	}
	return s
}

// NeutralVar builds a bare neutral variable with an empty spine.
func NeutralVar(name ident.Name) *Neutral {
	return &Neutral{Head: Head{Kind: HeadVar, Var: name}}
}

// NeutralGlobal builds a bare neutral global reference with an empty spine.
func NeutralGlobal(name string) *Neutral {
	return &Neutral{Head: Head{Kind: HeadGlobal, Global: name}}
}

// NeutralExtern builds a bare neutral extern reference with an empty spine.
func NeutralExtern(name string, ty Value) *Neutral {
	return &Neutral{Head: Head{Kind: HeadExtern, ExternName: name, ExternType: ty}}
}

// WithElim returns a copy of n with elim appended to its spine.
func (n *Neutral) WithElim(elim Elim) *Neutral {
	spine := make([]Elim, len(n.Spine), len(n.Spine)+1)
	copy(spine, n.Spine)
	spine = append(spine, elim)
	return &Neutral{Head: n.Head, Spine: spine}
}

// GlobalApp reports whether v is a bare (no spine) neutral global
// reference, returning its name. This is used by the elaborator to
// recognise the pre-declared globals that carry no value of their own
// (Bool, String, F32, F32Le, ...; Int and the sized integer formats
// unfold to IntType values instead) without
// string-matching on arbitrary neutral shapes.
func GlobalApp(v Value) (string, bool) {
	n, ok := v.(*Neutral)
	if !ok || n.Head.Kind != HeadGlobal || len(n.Spine) != 0 {
		return "", false
	}
	return n.Head.Global, true
}
