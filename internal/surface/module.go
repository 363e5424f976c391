package surface

import "github.com/jtojnar/fathom/internal/span"

// StructField is one declared field of a Struct item.
type StructField struct {
	Span  span.Span
	Doc   string
	Label string
	Type  Term
}

// Item is the sealed sum type of surface module items.
type Item interface {
	Span() span.Span
	Label() string
	isItem()
}

type itemNode struct {
	Sp  span.Span
	Lbl string
	Doc string
}

func (n itemNode) Span() span.Span { return n.Sp }
func (n itemNode) Label() string   { return n.Lbl }

// Alias is a named term definition, optionally with an explicit type.
type Alias struct {
	itemNode
	Type Term // nil if the alias has no annotation and must be synthesized
	Term Term
}

func (*Alias) isItem() {}

// Struct declares a dependent record type by name.
type Struct struct {
	itemNode
	Fields []StructField
}

func (*Struct) isItem() {}

// Module is a single parsed translation unit: a file id, its top-level
// doc comment, and an ordered list of items.
type Module struct {
	FileID string
	Doc    string
	Items  []Item
}

// NewAlias builds an Alias item. typ may be nil for an inferred alias.
func NewAlias(sp span.Span, label, doc string, typ, term Term) *Alias {
	return &Alias{itemNode: itemNode{Sp: sp, Lbl: label, Doc: doc}, Type: typ, Term: term}
}

// NewStruct builds a Struct item.
func NewStruct(sp span.Span, label, doc string, fields []StructField) *Struct {
	return &Struct{itemNode: itemNode{Sp: sp, Lbl: label, Doc: doc}, Fields: fields}
}
