// Package primenv holds the primitive environment: named external
// definitions together with their arity and reduction rule. A primitive
// is only invoked by the evaluator once its argument spine has exactly
// Arity entries, all of them fully-normal values.
package primenv

import "github.com/jtojnar/fathom/internal/value"

// Prim is one primitive definition.
type Prim struct {
	Arity     int
	Interpret func(args []value.Value) (value.Value, bool)
}

// Env maps primitive names to their definition. It is immutable once
// built; Extend returns a new Env sharing the receiver's entries.
type Env struct {
	entries map[string]Prim
}

// New builds an Env from a set of named primitives.
func New(entries map[string]Prim) *Env {
	copied := make(map[string]Prim, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Env{entries: copied}
}

// Get looks up a primitive by name.
func (e *Env) Get(name string) (Prim, bool) {
	if e == nil {
		return Prim{}, false
	}
	p, ok := e.entries[name]
	return p, ok
}

// Extend returns a new Env with name bound to prim, leaving the receiver
// untouched.
func (e *Env) Extend(name string, prim Prim) *Env {
	entries := make(map[string]Prim, len(e.entries)+1)
	for k, v := range e.entries {
		entries[k] = v
	}
	entries[name] = prim
	return &Env{entries: entries}
}

// Default returns the primitive environment exercised by the default
// tcenv.Env: a small set of total integer arithmetic/comparison
// primitives and an array-length query, reachable through core.Extern
// references. The
// concrete primitive set here is a representative one chosen to exercise
// the extern/primitive-reduction machinery the primitive environment
// supports, rather than an exhaustive one.
func Default() *Env {
	return New(map[string]Prim{
		"int-add": {Arity: 2, Interpret: intBinOp(func(a, b int64) int64 { return a + b })},
		"int-sub": {Arity: 2, Interpret: intBinOp(func(a, b int64) int64 { return a - b })},
		"int-mul": {Arity: 2, Interpret: intBinOp(func(a, b int64) int64 { return a * b })},
		"int-eq":  {Arity: 2, Interpret: intCmpOp(func(a, b int64) bool { return a == b })},
		"int-lt":  {Arity: 2, Interpret: intCmpOp(func(a, b int64) bool { return a < b })},
		"array-len": {
			Arity: 1,
			Interpret: func(args []value.Value) (value.Value, bool) {
				arr, ok := args[0].(*value.Array)
				if !ok {
					return nil, false
				}
				return &value.Literal{Value: litInt(int64(len(arr.Elements)))}, true
			},
		},
	})
}
