// Package elaborate implements the bidirectional elaborator translating
// internal/surface terms and items into internal/core terms: Check/Synth
// for terms, pattern compilation for match expressions, item elaboration
// for aliases and structs, and a module driver threading a tcenv.Env
// across a module's items in source order. Error reporting flows through
// a diagnostic.Sink callback so the elaborator stays error-tolerant
// rather than aborting at the first mistake.
package elaborate

import (
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// scope is a parent-chained list of local bindings introduced while
// elaborating a single item: a struct's own fields (visible to later
// fields, for length-dependent formats) and a match clause's pattern
// variable. It is distinct from tcenv.Env's item table, which only ever
// grows across whole modules.
type scope struct {
	parent *scope
	label  string
	name   ident.Name
	typ    value.Value
}

func (s *scope) lookup(label string) (ident.Name, value.Value, bool) {
	for n := s; n != nil; n = n.parent {
		if n.label == label {
			return n.name, n.typ, true
		}
	}
	return ident.Name{}, nil, false
}

func (s *scope) extend(label string, name ident.Name, typ value.Value) *scope {
	return &scope{parent: s, label: label, name: name, typ: typ}
}

// TermContext carries everything Check/Synth need: the typing
// environment (globals, primitives, claims, items), the diagnostic sink
// every problem is reported to instead of aborting elaboration, and the
// local scope of names introduced since the enclosing item started.
type TermContext struct {
	Env    *tcenv.Env
	Sink   diagnostic.Sink
	Locals *scope
}

// withLocal returns a TermContext extending c with one additional local
// binding, leaving c itself unmodified.
func (c *TermContext) withLocal(label string, name ident.Name, typ value.Value) *TermContext {
	return &TermContext{Env: c.Env, Sink: c.Sink, Locals: c.Locals.extend(label, name, typ)}
}

// withEnv returns a TermContext sharing c's sink and locals but using env.
func (c *TermContext) withEnv(env *tcenv.Env) *TermContext {
	return &TermContext{Env: env, Sink: c.Sink, Locals: c.Locals}
}

// errorValue is the type value assigned to a term that elaboration has
// already reported an error for, matching the sentinel internal/nbe's
// evaluator unfolds core.Error to. Comparing it against anything via
// nbe.Equal/IsSubtype only ever fails silently, so using it never
// triggers a second, cascading diagnostic: callers that produced it
// short-circuit on core.IsError instead of comparing types further.
var errorValue value.Value = value.NeutralGlobal("<error>")
