package nbe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

func intType(min, max *big.Int) *value.IntType {
	var minV, maxV value.Value
	if min != nil {
		minV = &value.Literal{Value: literal.Int(min)}
	}
	if max != nil {
		maxV = &value.Literal{Value: literal.Int(max)}
	}
	return &value.IntType{Min: minV, Max: maxV}
}

func global(name string) value.Value { return value.NeutralGlobal(name) }

func TestIsSubtypeReflexive(t *testing.T) {
	env := tcenv.Default()
	assert.True(t, IsSubtype(env, intType(big.NewInt(0), big.NewInt(255)), intType(big.NewInt(0), big.NewInt(255))))
}

func TestIsSubtypeIntervalContainment(t *testing.T) {
	env := tcenv.Default()

	tests := []struct {
		name string
		sub  *value.IntType
		sup  *value.IntType
		want bool
	}{
		{"narrower interval is a subtype of a wider one", intType(big.NewInt(10), big.NewInt(20)), intType(big.NewInt(0), big.NewInt(255)), true},
		{"wider interval is not a subtype of a narrower one", intType(big.NewInt(0), big.NewInt(255)), intType(big.NewInt(10), big.NewInt(20)), false},
		{"unbounded above is not a subtype of a bounded interval", intType(big.NewInt(0), nil), intType(big.NewInt(0), big.NewInt(255)), false},
		{"bounded interval is a subtype of unbounded above", intType(big.NewInt(0), big.NewInt(255)), intType(big.NewInt(0), nil), true},
		{"fully unbounded is a subtype of fully unbounded", intType(nil, nil), intType(nil, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSubtype(env, tt.sub, tt.sup))
		})
	}
}

func TestIsSubtypeSizedIntegerSubsumesInterval(t *testing.T) {
	env := tcenv.Default()

	tests := []struct {
		name string
		sub  string
		max  int64
	}{
		{"U8", "U8", 1<<8 - 1},
		{"U16", "U16", 1<<16 - 1},
		{"U32", "U32", 1<<32 - 1},
		{"U16Le", "U16Le", 1<<16 - 1},
		{"U16Be", "U16Be", 1<<16 - 1},
		{"U32Le", "U32Le", 1<<32 - 1},
		{"U32Be", "U32Be", 1<<32 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := env.Global(tt.sub)
			if !ok || g.Value == nil {
				t.Fatalf("expected %s to be a pre-declared global with a value", tt.sub)
			}
			assert.True(t, IsSubtype(env, g.Value, intType(big.NewInt(0), big.NewInt(tt.max))))
		})
	}
}

func TestIsSubtypeEndiannessErasure(t *testing.T) {
	env := tcenv.Default()

	assert.True(t, IsSubtype(env, global("F32Le"), global("F32")))
	assert.True(t, IsSubtype(env, global("F32Be"), global("F32")))
	assert.True(t, IsSubtype(env, global("F64Le"), global("F64")))
	assert.True(t, IsSubtype(env, global("F64Be"), global("F64")))
	assert.False(t, IsSubtype(env, global("F32Le"), global("F64")))
	assert.False(t, IsSubtype(env, global("F32"), global("F32Le")))
}

func TestIsSubtypeTransitive(t *testing.T) {
	env := tcenv.Default()
	a := intType(big.NewInt(10), big.NewInt(20))
	b := intType(big.NewInt(0), big.NewInt(100))
	c := intType(big.NewInt(0), big.NewInt(1000))

	if assert.True(t, IsSubtype(env, a, b)) && assert.True(t, IsSubtype(env, b, c)) {
		assert.True(t, IsSubtype(env, a, c))
	}
}
