// Package core defines the core term language produced by the elaborator:
// a dependently-typed calculus with universes, functions, dependent
// records, booleans, finite integer elimination, interval types, arrays,
// externs, literals, and an explicit error sentinel.
package core

import (
	"fmt"
	"math/big"

	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/span"
)

// Term is the sealed sum type of core terms. Every case carries an
// optional source span for diagnostics.
type Term interface {
	Span() span.Span
	String() string
	isTerm()
}

// node is embedded by every Term case to supply Span().
type node struct {
	Sp span.Span
}

func (n node) Span() span.Span { return n.Sp }

// Universe is a direct occurrence of one of the three sorts.
type Universe struct {
	node
	Sort  Sort
	Level Level
}

func (*Universe) isTerm() {}
func (u *Universe) String() string {
	return fmt.Sprintf("%s^%s", u.Sort, u.Level)
}

// Var is a reference to a bound or free variable.
type Var struct {
	node
	Name ident.Name
}

func (*Var) isTerm() {}
func (v *Var) String() string { return v.Name.String() }

// Global is a reference to a pre-declared name (Bool, U16Be, Array, ...).
type Global struct {
	node
	Name string
}

func (*Global) isTerm() {}
func (g *Global) String() string { return g.Name }

// Item is a reference to a previously elaborated item in the same module.
type Item struct {
	node
	Label ident.Label
}

func (*Item) isTerm() {}
func (i *Item) String() string { return string(i.Label) }

// Ann is an explicit type annotation.
type Ann struct {
	node
	Expr Term
	Type Term
}

func (*Ann) isTerm() {}
func (a *Ann) String() string { return fmt.Sprintf("(%s : %s)", a.Expr, a.Type) }

// Pi is a dependent function type `(x : ParamType) -> Body`.
type Pi struct {
	node
	Param     ident.Name
	ParamType Term
	Body      Term
}

func (*Pi) isTerm() {}
func (p *Pi) String() string {
	return fmt.Sprintf("(%s : %s) -> %s", p.Param, p.ParamType, p.Body)
}

// Lam is a function introduction `\(x : ParamType) => Body`.
type Lam struct {
	node
	Param     ident.Name
	ParamType Term
	Body      Term
}

func (*Lam) isTerm() {}
func (l *Lam) String() string {
	return fmt.Sprintf("\\(%s : %s) => %s", l.Param, l.ParamType, l.Body)
}

// App is function application.
type App struct {
	node
	Func Term
	Arg  Term
}

func (*App) isTerm() {}
func (a *App) String() string { return fmt.Sprintf("(%s %s)", a.Func, a.Arg) }

// RecordType is one field of a dependent record type, linked to the rest
// of the type through Rest.
type RecordType struct {
	node
	Label     ident.Label
	Binder    ident.Name
	FieldType Term
	Rest      Term
}

func (*RecordType) isTerm() {}
func (r *RecordType) String() string {
	return fmt.Sprintf("{%s : %s, %s}", r.Label, r.FieldType, r.Rest)
}

// RecordTypeEmpty is the empty record type.
type RecordTypeEmpty struct{ node }

func (*RecordTypeEmpty) isTerm() {}
func (*RecordTypeEmpty) String() string { return "{}" }

// Record is one field of a record introduction, linked to the rest of the
// record through Rest.
type Record struct {
	node
	Label  ident.Label
	Binder ident.Name
	Value  Term
	Rest   Term
}

func (*Record) isTerm() {}
func (r *Record) String() string {
	return fmt.Sprintf("{%s = %s, %s}", r.Label, r.Value, r.Rest)
}

// RecordEmpty is the empty record.
type RecordEmpty struct{ node }

func (*RecordEmpty) isTerm() {}
func (*RecordEmpty) String() string { return "{}" }

// Proj projects a labelled field out of a record.
type Proj struct {
	node
	Expr  Term
	Label ident.Label
}

func (*Proj) isTerm() {}
func (p *Proj) String() string { return fmt.Sprintf("%s.%s", p.Expr, p.Label) }

// BoolElim is boolean case analysis.
type BoolElim struct {
	node
	Cond    Term
	IfTrue  Term
	IfFalse Term
}

func (*BoolElim) isTerm() {}
func (b *BoolElim) String() string {
	return fmt.Sprintf("if %s then %s else %s", b.Cond, b.IfTrue, b.IfFalse)
}

// IntBranch is one literal-keyed arm of an IntElim, kept in an ordered
// slice (rather than a map) so elaboration order and pretty-printing are
// deterministic.
type IntBranch struct {
	Value *big.Int
	Body  Term
}

// IntElim is finite integer case analysis: a literal-keyed branch table
// plus a mandatory default.
type IntElim struct {
	node
	Scrutinee Term
	Branches  []IntBranch
	Default   Term
}

func (*IntElim) isTerm() {}
func (i *IntElim) String() string {
	return fmt.Sprintf("match %s { %d branches, default %s }", i.Scrutinee, len(i.Branches), i.Default)
}

// Lookup returns the branch body for value, if any.
func (i *IntElim) Lookup(value *big.Int) (Term, bool) {
	for _, b := range i.Branches {
		if b.Value.Cmp(value) == 0 {
			return b.Body, true
		}
	}
	return nil, false
}

// IntType is an integer interval type with optional inclusive bounds;
// either bound may be nil, meaning unbounded on that side.
type IntType struct {
	node
	Min Term
	Max Term
}

func (*IntType) isTerm() {}
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

// Array is an array literal.
type Array struct {
	node
	Elems []Term
}

func (*Array) isTerm() {}
func (a *Array) String() string { return fmt.Sprintf("%v", a.Elems) }

// Extern is a reference to a named primitive, ascribed with its type.
type Extern struct {
	node
	Name string
	Type Term
}

func (*Extern) isTerm() {}
func (e *Extern) String() string { return fmt.Sprintf("extern %s : %s", e.Name, e.Type) }

// Lit is a literal constant.
type Lit struct {
	node
	Value literal.Constant
}

func (*Lit) isTerm() {}
func (l *Lit) String() string { return l.Value.String() }

// Error is the error sentinel: produced after a diagnostic has been
// reported, and absorbing further errors so that one mistake does not
// cascade into a flood of unrelated diagnostics.
type Error struct{ node }

func (*Error) isTerm() {}
func (*Error) String() string { return "<error>" }

// IsError reports whether t is the error sentinel.
func IsError(t Term) bool {
	_, ok := t.(*Error)
	return ok
}

// Constructors below attach a span to each node; they exist so call sites
// read as `core.NewVar(sp, name)` rather than repeating the node literal.

func NewUniverse(sp span.Span, sort Sort, level Level) *Universe {
	return &Universe{node{sp}, sort, level}
}
func NewVar(sp span.Span, name ident.Name) *Var { return &Var{node{sp}, name} }
func NewGlobal(sp span.Span, name string) *Global { return &Global{node{sp}, name} }
func NewItem(sp span.Span, label ident.Label) *Item { return &Item{node{sp}, label} }
func NewAnn(sp span.Span, expr, ty Term) *Ann { return &Ann{node{sp}, expr, ty} }
func NewPi(sp span.Span, param ident.Name, paramTy, body Term) *Pi {
	return &Pi{node{sp}, param, paramTy, body}
}
func NewLam(sp span.Span, param ident.Name, paramTy, body Term) *Lam {
	return &Lam{node{sp}, param, paramTy, body}
}
func NewApp(sp span.Span, fn, arg Term) *App { return &App{node{sp}, fn, arg} }
func NewRecordType(sp span.Span, label ident.Label, binder ident.Name, fieldTy, rest Term) *RecordType {
	return &RecordType{node{sp}, label, binder, fieldTy, rest}
}
func NewRecordTypeEmpty(sp span.Span) *RecordTypeEmpty { return &RecordTypeEmpty{node{sp}} }
func NewRecord(sp span.Span, label ident.Label, binder ident.Name, value, rest Term) *Record {
	return &Record{node{sp}, label, binder, value, rest}
}
func NewRecordEmpty(sp span.Span) *RecordEmpty { return &RecordEmpty{node{sp}} }
func NewProj(sp span.Span, expr Term, label ident.Label) *Proj { return &Proj{node{sp}, expr, label} }
func NewBoolElim(sp span.Span, cond, t, f Term) *BoolElim { return &BoolElim{node{sp}, cond, t, f} }
func NewIntElim(sp span.Span, scrutinee Term, branches []IntBranch, def Term) *IntElim {
	return &IntElim{node{sp}, scrutinee, branches, def}
}
func NewIntType(sp span.Span, min, max Term) *IntType { return &IntType{node{sp}, min, max} }
func NewArray(sp span.Span, elems []Term) *Array { return &Array{node{sp}, elems} }
func NewExtern(sp span.Span, name string, ty Term) *Extern { return &Extern{node{sp}, name, ty} }
func NewLit(sp span.Span, value literal.Constant) *Lit { return &Lit{node{sp}, value} }
func NewError(sp span.Span) *Error { return &Error{node{sp}} }
