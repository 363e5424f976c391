package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/module"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
)

func TestValidateAgreesWithElaborationForWellFormedModule(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	fields := []surface.StructField{
		{Label: "flag", Type: name("Bool")},
		{Label: "payload", Type: &surface.If{Cond: name("flag"), IfTrue: name("U8"), IfFalse: name("U16")}},
	}
	sm := &surface.Module{
		FileID: "test",
		Items: []surface.Item{
			surface.NewAlias(span.Zero, "limit", "", name("U8"), number("10")),
			surface.NewStruct(span.Zero, "Packet", "", fields),
		},
	}

	m := ElaborateModule(sm, sink)
	require.Empty(t, sink.Diagnostics)
	assert.NoError(t, Validate(m), "a module elaboration accepted must also pass independent validation")
}

func TestValidateRejectsTamperedTerm(t *testing.T) {
	sink := &diagnostic.SliceSink{}
	sm := &surface.Module{
		FileID: "test",
		Items:  []surface.Item{surface.NewAlias(span.Zero, "limit", "", name("U8"), number("10"))},
	}

	m := ElaborateModule(sm, sink)
	require.Empty(t, sink.Diagnostics)

	alias := m.Items[0].(*module.Alias)
	alias.Term = core.NewGlobal(span.Zero, "true")

	err := Validate(m)
	assert.Error(t, err, "a term of type Bool smuggled in under a U8-declared alias must fail validation")
}

func TestValidateRejectsUnboundVariable(t *testing.T) {
	m := &module.Module{
		FileID: "test",
		Items: []module.Item{
			&module.Alias{
				Name: "bogus",
				Type: core.NewGlobal(span.Zero, "U8"),
				Term: core.NewVar(span.Zero, ident.Fresh("neverBound")),
			},
		},
	}

	err := Validate(m)
	assert.Error(t, err, "a reference to a binder that was never introduced must fail validation")
}
