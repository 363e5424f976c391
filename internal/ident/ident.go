// Package ident implements the Name and Label identifiers used throughout
// the core syntax. Names follow a locally-nameless discipline: a bound
// Name is a de Bruijn index only meaningful inside the binder that
// introduced it, and a free Name is a process-unique handle that is safe
// to compare for equality and to use as a map key. Values must never
// contain a bound Name; entering a binder always freshens it first.
package ident

import "fmt"
import "sync/atomic"

// Kind distinguishes a free, globally-unique name from a bound, de
// Bruijn-indexed placeholder.
type Kind int

const (
	Free Kind = iota
	Bound
)

var counter uint64

// Name is either a free, process-unique identifier or a bound de Bruijn
// index, both carrying a human-readable hint for diagnostics and display.
type Name struct {
	kind  Kind
	hint  string
	id    uint64
	index uint32
}

// Fresh mints a new free Name, distinct from every other Name minted in
// this process. hint is used only for display.
func Fresh(hint string) Name {
	id := atomic.AddUint64(&counter, 1)
	return Name{kind: Free, hint: hint, id: id}
}

// BoundVar builds a bound Name at the given de Bruijn index. Binder
// implementations use this while the body of a scope is still in its
// "raw" (not yet opened) representation; such a Name must be replaced by
// a Fresh one before the body is inspected as a term or evaluated.
func BoundVar(index uint32, hint string) Name {
	return Name{kind: Bound, hint: hint, index: index}
}

// IsFree reports whether n is a free name.
func (n Name) IsFree() bool { return n.kind == Free }

// IsBound reports whether n is a bound (de Bruijn) placeholder.
func (n Name) IsBound() bool { return n.kind == Bound }

// Hint returns the display hint the name was minted with.
func (n Name) Hint() string { return n.hint }

// Index returns the de Bruijn index of a bound name. Calling this on a
// free name is a programmer error.
func (n Name) Index() uint32 {
	if n.kind != Bound {
		panic("ident: Index called on a free Name")
	}
	return n.index
}

// Equal reports whether two names refer to the same binding occurrence:
// free names compare by their unique id, bound names by kind and index
// (two bound names from unrelated scopes are never meant to be compared,
// but the comparison is total so callers do not need to special-case it).
func (n Name) Equal(other Name) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == Free {
		return n.id == other.id
	}
	return n.index == other.index
}

func (n Name) String() string {
	switch n.kind {
	case Free:
		if n.hint == "" {
			return fmt.Sprintf("#%d", n.id)
		}
		return fmt.Sprintf("%s#%d", n.hint, n.id)
	default:
		if n.hint == "" {
			return fmt.Sprintf("@%d", n.index)
		}
		return fmt.Sprintf("%s@%d", n.hint, n.index)
	}
}

// Label is a unique-within-scope string tag for module items and record
// fields.
type Label string

func (l Label) String() string { return string(l) }
