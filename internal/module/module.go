// Package module defines the downstream contract the elaborator produces
// and internal/docgen consumes: a fully elaborated module's items, each
// carrying enough source-position detail (a field's starting byte offset)
// for a generator to recover original layout without re-parsing.
package module

import "github.com/jtojnar/fathom/internal/core"

// Field is one elaborated field of a Struct.
type Field struct {
	Name   string
	Doc    string
	Offset int // byte offset of the field's start in the original source
	Type   core.Term
}

// Struct is a fully elaborated struct (dependent record type) item. Type
// is the assembled core.RecordType chain (the field binder free variables
// it closes over are only meaningful inside this term); Fields is the
// same information flattened for docgen and other display-only
// consumers that have no use for the binder identities.
type Struct struct {
	Name   string
	Doc    string
	Fields []Field
	Type   core.Term
}

// Alias is a fully elaborated alias item.
type Alias struct {
	Name string
	Doc  string
	Type core.Term
	Term core.Term
}

// Item is the sealed sum type of elaborated module items.
type Item interface {
	isItem()
	itemName() string
}

func (*Struct) isItem()          {}
func (s *Struct) itemName() string { return s.Name }
func (*Alias) isItem()           {}
func (a *Alias) itemName() string { return a.Name }

// Module is a fully elaborated translation unit.
type Module struct {
	FileID     string
	Doc        string
	FrontMatter *FrontMatter
	Items      []Item
}

// ItemNames returns the items' names in declaration order, for callers
// that want to enumerate a module without a type switch.
func (m *Module) ItemNames() []string {
	names := make([]string, len(m.Items))
	for i, item := range m.Items {
		names[i] = item.itemName()
	}
	return names
}
