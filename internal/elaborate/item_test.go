package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/module"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
)

func name(ident string) *surface.Name { return &surface.Name{Ident: ident} }

func number(digits string) *surface.NumberLiteral { return &surface.NumberLiteral{Digits: digits} }

func TestElaborateAliasWithAnnotation(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	sm := &surface.Module{
		FileID: "test",
		Items:  []surface.Item{surface.NewAlias(span.Zero, "byteLimit", "", name("U8"), number("200"))},
	}

	m := ElaborateModule(sm, sink)
	require.Empty(t, sink.Diagnostics)
	require.Len(t, m.Items, 1)

	alias, ok := m.Items[0].(*module.Alias)
	require.True(t, ok)
	assert.Equal(t, "byteLimit", alias.Name)

	lit, ok := alias.Term.(*core.Lit)
	require.True(t, ok, "expected a literal term, got %T", alias.Term)
	assert.Equal(t, int64(200), lit.Value.I.Int64())
}

func TestElaborateAliasInferredFromGlobal(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	sm := &surface.Module{
		FileID: "test",
		Items:  []surface.Item{surface.NewAlias(span.Zero, "flag", "", nil, name("true"))},
	}

	m := ElaborateModule(sm, sink)
	require.Empty(t, sink.Diagnostics)
	alias := m.Items[0].(*module.Alias)

	g, ok := alias.Term.(*core.Global)
	require.True(t, ok)
	assert.Equal(t, "true", g.Name)

	ty, ok := alias.Type.(*core.Global)
	require.True(t, ok, "expected the inferred type to quote back to a bare Bool global, got %T", alias.Type)
	assert.Equal(t, "Bool", ty.Name)
}

func TestElaborateItemRedefinitionKeepsFirst(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	sm := &surface.Module{
		FileID: "test",
		Items: []surface.Item{
			surface.NewAlias(span.Zero, "dup", "", name("U8"), number("1")),
			surface.NewAlias(span.Zero, "dup", "", name("U8"), number("2")),
		},
	}

	m := ElaborateModule(sm, sink)
	require.Len(t, m.Items, 1, "the duplicate item must not be elaborated a second time")

	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "ELAB002", sink.Diagnostics[0].Code)

	alias := m.Items[0].(*module.Alias)
	assert.Equal(t, int64(1), alias.Term.(*core.Lit).Value.I.Int64())
}

func TestElaborateAliasLiteralOutOfRange(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	sm := &surface.Module{
		FileID: "test",
		Items: []surface.Item{
			surface.NewAlias(span.Zero, "C", "", name("U8"), number("256")),
			surface.NewAlias(span.Zero, "D", "", name("U8"), number("1")),
		},
	}

	m := ElaborateModule(sm, sink)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "ELAB018", sink.Diagnostics[0].Code)

	require.Len(t, m.Items, 2, "the out-of-range item must not stop later items from elaborating")

	c := m.Items[0].(*module.Alias)
	assert.True(t, core.IsError(c.Term), "an out-of-range literal must elaborate to the error sentinel, got %T", c.Term)

	d := m.Items[1].(*module.Alias)
	assert.Equal(t, int64(1), d.Term.(*core.Lit).Value.I.Int64())
}

func TestElaborateStructFieldRedeclaration(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	fields := []surface.StructField{
		{Label: "x", Type: name("U8")},
		{Label: "x", Type: name("U16")},
	}
	sm := &surface.Module{
		FileID: "test",
		Items:  []surface.Item{surface.NewStruct(span.Zero, "S", "", fields)},
	}

	m := ElaborateModule(sm, sink)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "ELAB003", sink.Diagnostics[0].Code)

	s := m.Items[0].(*module.Struct)
	assert.Len(t, s.Fields, 1, "the redeclared field must be dropped, keeping only the first")
}

func TestElaborateStructFieldSeesEarlierFieldAsValue(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	fields := []surface.StructField{
		{Label: "flag", Type: name("Bool")},
		{Label: "payload", Type: &surface.If{Cond: name("flag"), IfTrue: name("U8"), IfFalse: name("U16")}},
	}
	sm := &surface.Module{
		FileID: "test",
		Items:  []surface.Item{surface.NewStruct(span.Zero, "S", "", fields)},
	}

	m := ElaborateModule(sm, sink)
	require.Empty(t, sink.Diagnostics, "a later field choosing its format from an earlier field's value must elaborate cleanly")

	s := m.Items[0].(*module.Struct)
	require.Len(t, s.Fields, 2)

	elim, ok := s.Fields[1].Type.(*core.BoolElim)
	require.True(t, ok, "expected the dependent field's type to be a BoolElim, got %T", s.Fields[1].Type)
	_, ok = elim.Cond.(*core.Var)
	assert.True(t, ok, "the condition must reference the earlier field's binder as a bound variable")

	_, ok = s.Type.(*core.RecordType)
	require.True(t, ok, "struct.Type must be the assembled dependent record type")
}
