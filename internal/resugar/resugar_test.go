package resugar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

func TestFromTermGlobal(t *testing.T) {
	got := FromTerm(core.NewGlobal(span.Zero, "U8"))
	assert.Equal(t, "U8", got.String())
}

func TestFromTermBoolElim(t *testing.T) {
	term := core.NewBoolElim(span.Zero,
		core.NewGlobal(span.Zero, "flag"),
		core.NewGlobal(span.Zero, "U8"),
		core.NewGlobal(span.Zero, "U16"),
	)
	assert.Equal(t, "if flag then U8 else U16", FromTerm(term).String())
}

func TestFromTermIntElimAppendsWildcardDefault(t *testing.T) {
	term := core.NewIntElim(span.Zero, core.NewGlobal(span.Zero, "tag"),
		[]core.IntBranch{{Value: big.NewInt(1), Body: core.NewGlobal(span.Zero, "A")}},
		core.NewGlobal(span.Zero, "B"),
	)
	got := FromTerm(term)
	assert.Contains(t, got.String(), "match tag")

	m, ok := got.(*surface.Match)
	if assert.True(t, ok, "expected a surface match, got %T", got) && assert.Len(t, m.Clauses, 2) {
		assert.Equal(t, "_", m.Clauses[1].Pattern.String())
	}
}

func TestPrettyOnUniverseValue(t *testing.T) {
	assert.Equal(t, "Format", Pretty(&value.Universe{Sort: core.Format, Level: 0}))
}

func TestPrettyOnNeutralGlobal(t *testing.T) {
	assert.Equal(t, "Bool", Pretty(value.NeutralGlobal("Bool")))
}
