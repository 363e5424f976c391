package main

import (
	"sort"

	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
)

// name and number build the two leaf surface term kinds a hand-authored
// fixture ever needs, the same shorthand internal/elaborate's own tests
// use, since no lexer or parser exists to produce these from text (see
// out of scope by design).
func name(ident string) *surface.Name     { return &surface.Name{Ident: ident} }
func number(digits string) *surface.NumberLiteral { return &surface.NumberLiteral{Digits: digits} }

// fixtures is the small embedded module set every subcommand selects
// from by name: with no parser, a CLI "file argument" can only ever be
// one of these, so it is spelled as a lookup rather than a path.
var fixtures = map[string]*surface.Module{
	"point": {
		FileID: "point.fathom",
		Doc:    "A pair of unsigned byte coordinates.",
		Items: []surface.Item{
			surface.NewStruct(span.Zero, "Point", "A 2D point with byte-sized coordinates.", []surface.StructField{
				{Label: "x", Doc: "horizontal offset", Type: name("U8")},
				{Label: "y", Doc: "vertical offset", Type: name("U8")},
			}),
		},
	},
	"flags": {
		FileID: "flags.fathom",
		Doc:    "A boolean-gated variable-width payload.",
		Items: []surface.Item{
			surface.NewAlias(span.Zero, "maxPayload", "largest payload size in bytes", name("U8"), number("255")),
			surface.NewStruct(span.Zero, "TaggedValue", "A value whose width depends on its own tag.", []surface.StructField{
				{Label: "wide", Doc: "true selects the 16-bit payload", Type: name("Bool")},
				{Label: "payload", Doc: "", Type: &surface.If{Cond: name("wide"), IfTrue: name("U16Be"), IfFalse: name("U8")}},
			}),
		},
	},
	"broken": {
		FileID: "broken.fathom",
		Doc:    "A deliberately ill-formed module, for exercising diagnostic rendering.",
		Items: []surface.Item{
			surface.NewAlias(span.Zero, "limit", "", name("U8"), name("nonexistent")),
			surface.NewStruct(span.Zero, "Dup", "", []surface.StructField{
				{Label: "a", Type: name("U8")},
				{Label: "a", Type: name("U16Be")},
			}),
		},
	},
}

// fixtureNames returns the embedded fixture names in a stable order, for
// :list and usage text.
func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for n := range fixtures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
