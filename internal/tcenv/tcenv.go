// Package tcenv implements the typing environment threaded through
// elaboration, normalization, and conversion checking: primitive
// definitions, global annotation/definition pairs, and the claims and
// definitions accumulated while entering binders. All four maps are
// persistent: entering a binder clones the environment and inserts one
// claim (or definition), so sibling and child calls never observe each
// other's insertions. Claims and Definitions use parent-chained
// immutable maps (no copying of existing entries) so Extend is O(1);
// Globals and Primitives are built once by Default and shared by every
// derived environment.
package tcenv

import (
	"math/big"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/primenv"
	"github.com/jtojnar/fathom/internal/value"
)

// Global is a global's optional value (for globals that unfold) and its
// type.
type Global struct {
	Value value.Value // nil if the global never unfolds
	Type  value.Value
}

type claimNode struct {
	name   ident.Name
	typ    value.Value
	parent *claimNode
}

type defNode struct {
	name   ident.Name
	term   core.Term
	parent *defNode
}

type itemNode struct {
	label  string
	value  Global
	parent *itemNode
}

// Env is the persistent typing environment.
type Env struct {
	Primitives *primenv.Env
	globals    map[string]Global
	claims     *claimNode
	defs       *defNode
	items      *itemNode
}

// New builds an empty environment over the given primitives and globals.
func New(primitives *primenv.Env, globals map[string]Global) *Env {
	return &Env{Primitives: primitives, globals: globals}
}

// Global looks up a pre-declared global by name.
func (e *Env) Global(name string) (Global, bool) {
	g, ok := e.globals[name]
	return g, ok
}

// Globals returns the full global table, for callers that need to
// enumerate it.
func (e *Env) Globals() map[string]Global {
	return e.globals
}

// Claim looks up the type claimed for a free variable.
func (e *Env) Claim(name ident.Name) (value.Value, bool) {
	for n := e.claims; n != nil; n = n.parent {
		if n.name.Equal(name) {
			return n.typ, true
		}
	}
	return nil, false
}

// Definition looks up the term a free variable was defined as.
func (e *Env) Definition(name ident.Name) (core.Term, bool) {
	for n := e.defs; n != nil; n = n.parent {
		if n.name.Equal(name) {
			return n.term, true
		}
	}
	return nil, false
}

// Item looks up a module item (an Alias or Struct binding) by label. Items
// are populated by the module driver in internal/elaborate as each item is
// checked, in source order, so later items can refer to earlier ones but
// never the reverse.
func (e *Env) Item(label string) (Global, bool) {
	for n := e.items; n != nil; n = n.parent {
		if n.label == label {
			return n.value, true
		}
	}
	return Global{}, false
}

// WithItem returns a new Env extending the receiver with one additional
// item binding, leaving the receiver itself unmodified.
func (e *Env) WithItem(label string, g Global) *Env {
	return &Env{
		Primitives: e.Primitives,
		globals:    e.globals,
		claims:     e.claims,
		defs:       e.defs,
		items:      &itemNode{label: label, value: g, parent: e.items},
	}
}

// WithClaim returns a new Env extending the receiver with one additional
// claim, leaving the receiver itself unmodified.
func (e *Env) WithClaim(name ident.Name, typ value.Value) *Env {
	return &Env{
		Primitives: e.Primitives,
		globals:    e.globals,
		claims:     &claimNode{name: name, typ: typ, parent: e.claims},
		defs:       e.defs,
		items:      e.items,
	}
}

// WithDefinition returns a new Env extending the receiver with one
// additional definition, leaving the receiver itself unmodified.
func (e *Env) WithDefinition(name ident.Name, term core.Term) *Env {
	return &Env{
		Primitives: e.Primitives,
		globals:    e.globals,
		claims:     e.claims,
		defs:       &defNode{name: name, term: term, parent: e.defs},
		items:      e.items,
	}
}

// Default builds the environment pre-declared by the language: Bool,
// true, false, String, Char, Int, the fixed-width integer families (as
// sugar over interval types), F32/F64, and one endian-tagged global per
// sized numeric format. No Array global is declared.
func Default() *Env {
	universe0 := &value.Universe{Sort: core.Type, Level: 0}
	// formatUniverse classifies the sized integer/float formats: each one
	// is a Format-sorted binary format descriptor (a struct field's type,
	// or an alias's value), unlike Bool/Int/String/Char which classify
	// ordinary host-language values used in lengths and predicates.
	formatUniverse := &value.Universe{Sort: core.Format, Level: 0}
	boolTy := value.NeutralGlobal("Bool")
	intTy := func(min, max *big.Int) value.Value {
		var minV, maxV value.Value
		if min != nil {
			minV = &value.Literal{Value: literal.Int(min)}
		}
		if max != nil {
			maxV = &value.Literal{Value: literal.Int(max)}
		}
		return &value.IntType{Min: minV, Max: maxV}
	}

	globals := map[string]Global{
		"Bool":   {Type: universe0},
		"true":   {Value: &value.Literal{Value: literal.Bool(true)}, Type: boolTy},
		"false":  {Value: &value.Literal{Value: literal.Bool(false)}, Type: boolTy},
		"String": {Type: universe0},
		"Char":   {Type: universe0},
		"Int":    {Type: universe0, Value: intTy(nil, nil)},
		"F32":    {Type: formatUniverse},
		"F64":    {Type: formatUniverse},

		"U8":  {Type: formatUniverse, Value: intTy(big.NewInt(0), big.NewInt(1<<8-1))},
		"U16": {Type: formatUniverse, Value: intTy(big.NewInt(0), big.NewInt(1<<16-1))},
		"U32": {Type: formatUniverse, Value: intTy(big.NewInt(0), big.NewInt(1<<32-1))},
		"U64": {Type: formatUniverse, Value: intTy(big.NewInt(0), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)))},
		"S8":  {Type: formatUniverse, Value: intTy(big.NewInt(-1<<7), big.NewInt(1<<7-1))},
		"S16": {Type: formatUniverse, Value: intTy(big.NewInt(-1<<15), big.NewInt(1<<15-1))},
		"S32": {Type: formatUniverse, Value: intTy(big.NewInt(-1<<31), big.NewInt(1<<31-1))},
		"S64": {Type: formatUniverse, Value: intTy(big.NewInt(-1<<63), big.NewInt(1<<63-1))},
	}

	// Sized endian-tagged numeric formats: each is a global whose own
	// *value* unfolds to the interval its name implies, so that
	// subtyping (internal/nbe) can dispatch on the resulting IntType
	// shape rather than string-matching the name itself.
	endianInt := func(min, max *big.Int) Global {
		return Global{Type: formatUniverse, Value: intTy(min, max)}
	}
	globals["U16Le"] = endianInt(big.NewInt(0), big.NewInt(1<<16-1))
	globals["U16Be"] = endianInt(big.NewInt(0), big.NewInt(1<<16-1))
	globals["U32Le"] = endianInt(big.NewInt(0), big.NewInt(1<<32-1))
	globals["U32Be"] = endianInt(big.NewInt(0), big.NewInt(1<<32-1))
	globals["U64Le"] = endianInt(big.NewInt(0), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)))
	globals["U64Be"] = endianInt(big.NewInt(0), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)))
	globals["S16Le"] = endianInt(big.NewInt(-1<<15), big.NewInt(1<<15-1))
	globals["S16Be"] = endianInt(big.NewInt(-1<<15), big.NewInt(1<<15-1))
	globals["S32Le"] = endianInt(big.NewInt(-1<<31), big.NewInt(1<<31-1))
	globals["S32Be"] = endianInt(big.NewInt(-1<<31), big.NewInt(1<<31-1))
	globals["S64Le"] = endianInt(big.NewInt(-1<<63), big.NewInt(1<<63-1))
	globals["S64Be"] = endianInt(big.NewInt(-1<<63), big.NewInt(1<<63-1))

	// F32Le/F32Be/F64Le/F64Be carry no value of their own (floats are not
	// given an interval representation); IsSubtype special-cases these
	// four names directly against F32/F64.
	globals["F32Le"] = Global{Type: formatUniverse}
	globals["F32Be"] = Global{Type: formatUniverse}
	globals["F64Le"] = Global{Type: formatUniverse}
	globals["F64Be"] = Global{Type: formatUniverse}

	return New(primenv.Default(), globals)
}
