package nbe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

func litTerm(i int64) core.Term {
	return core.NewLit(span.Zero, literal.IntFromInt64(i))
}

func TestNormalizeLiterals(t *testing.T) {
	env := tcenv.Default()

	v, err := Normalize(env, litTerm(42))
	require.NoError(t, err)

	lit, ok := v.(*value.Literal)
	require.True(t, ok, "expected a literal value, got %T", v)
	assert.Equal(t, literal.KindInt, lit.Value.Kind)
	assert.Equal(t, big.NewInt(42), lit.Value.I)
}

func TestNormalizeGlobalUnfoldsToItsValue(t *testing.T) {
	env := tcenv.Default()

	v, err := Normalize(env, core.NewGlobal(span.Zero, "true"))
	require.NoError(t, err)

	lit, ok := v.(*value.Literal)
	require.True(t, ok, "expected true to unfold to a boolean literal, got %T", v)
	assert.True(t, lit.Value.B)
}

func TestNormalizeBetaReduction(t *testing.T) {
	env := tcenv.Default()

	// (\(x : Bool) => x) true
	param := ident.BoundVar(0, "x")
	lam := core.NewLam(span.Zero, param, core.NewGlobal(span.Zero, "Bool"), core.NewVar(span.Zero, ident.BoundVar(0, "x")))
	app := core.NewApp(span.Zero, lam, core.NewGlobal(span.Zero, "true"))

	v, err := Normalize(env, app)
	require.NoError(t, err)

	lit, ok := v.(*value.Literal)
	require.True(t, ok, "expected beta reduction to leave a boolean literal, got %T", v)
	assert.True(t, lit.Value.B)
}

func TestNormalizeExternPrimitiveReduction(t *testing.T) {
	env := tcenv.Default()

	// extern int-add : U8 $ 2 $ 3
	externTy := core.NewGlobal(span.Zero, "U8")
	add := core.NewExtern(span.Zero, "int-add", externTy)
	app := core.NewApp(span.Zero, core.NewApp(span.Zero, add, litTerm(2)), litTerm(3))

	v, err := Normalize(env, app)
	require.NoError(t, err)

	lit, ok := v.(*value.Literal)
	require.True(t, ok, "expected the fully-applied primitive to reduce to a literal, got %T", v)
	assert.Equal(t, big.NewInt(5), lit.Value.I)
}

func TestNormalizeExternPartialApplicationStaysNeutral(t *testing.T) {
	env := tcenv.Default()

	// extern int-add : U8 $ 2, with only one of the two arguments supplied.
	externTy := core.NewGlobal(span.Zero, "U8")
	add := core.NewExtern(span.Zero, "int-add", externTy)
	app := core.NewApp(span.Zero, add, litTerm(2))

	v, err := Normalize(env, app)
	require.NoError(t, err)

	n, ok := v.(*value.Neutral)
	require.True(t, ok, "a primitive short of its full arity must stay neutral, got %T", v)
	assert.Equal(t, value.HeadExtern, n.Head.Kind)
	assert.Equal(t, "int-add", n.Head.ExternName)
	assert.Len(t, n.Spine, 1)
}

func TestNormalizeBoolElimOnLiteral(t *testing.T) {
	env := tcenv.Default()

	ifTerm := core.NewBoolElim(span.Zero, core.NewGlobal(span.Zero, "true"), litTerm(1), litTerm(2))
	v, err := Normalize(env, ifTerm)
	require.NoError(t, err)

	lit, ok := v.(*value.Literal)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(1), lit.Value.I)
}

func TestNormalizeBoolElimOnNeutralQueuesElimIf(t *testing.T) {
	env := tcenv.Default()
	scrutinee := ident.Fresh("flag")
	ifTerm := core.NewBoolElim(span.Zero, core.NewVar(span.Zero, scrutinee), litTerm(1), litTerm(2))

	v, err := Normalize(env, ifTerm)
	require.NoError(t, err)

	n, ok := v.(*value.Neutral)
	require.True(t, ok, "expected a neutral value, got %T", v)
	require.Len(t, n.Spine, 1)
	_, ok = n.Spine[0].(value.ElimIf)
	assert.True(t, ok)
}

func TestNormalizeIntElimDispatchesBranchOrDefault(t *testing.T) {
	env := tcenv.Default()
	branches := []core.IntBranch{
		{Value: big.NewInt(1), Body: litTerm(100)},
		{Value: big.NewInt(2), Body: litTerm(200)},
	}

	matched := core.NewIntElim(span.Zero, litTerm(2), branches, litTerm(-1))
	v, err := Normalize(env, matched)
	require.NoError(t, err)
	lit := v.(*value.Literal)
	assert.Equal(t, big.NewInt(200), lit.Value.I)

	unmatched := core.NewIntElim(span.Zero, litTerm(9), branches, litTerm(-1))
	v, err = Normalize(env, unmatched)
	require.NoError(t, err)
	lit = v.(*value.Literal)
	assert.Equal(t, big.NewInt(-1), lit.Value.I)
}

func TestNormalizeRecordProjection(t *testing.T) {
	env := tcenv.Default()
	binder := ident.BoundVar(0, "rest")

	// {a = 1, {b = 2, {}}} . b
	record := core.NewRecord(span.Zero, "a", binder, litTerm(1),
		core.NewRecord(span.Zero, "b", ident.BoundVar(0, "rest2"), litTerm(2), core.NewRecordEmpty(span.Zero)))
	proj := core.NewProj(span.Zero, record, "b")

	v, err := Normalize(env, proj)
	require.NoError(t, err)
	lit := v.(*value.Literal)
	assert.Equal(t, big.NewInt(2), lit.Value.I)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	env := tcenv.Default()
	term := core.NewBoolElim(span.Zero, core.NewGlobal(span.Zero, "false"), litTerm(1), litTerm(2))

	first, err := Normalize(env, term)
	require.NoError(t, err)
	second, err := Normalize(env, value.Quote(first))
	require.NoError(t, err)

	assert.True(t, Equal(env, first, second), "re-normalizing a quoted normal value must return an equal value")
}

func TestNormalizeErrorSentinelAbsorbs(t *testing.T) {
	env := tcenv.Default()
	term := core.NewApp(span.Zero, core.NewError(span.Zero), litTerm(1))

	_, err := Normalize(env, term)
	assert.NoError(t, err, "applying to the error sentinel must not itself raise an internal error")
}
