package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

func namePattern(ident string) *surface.NamePattern { return &surface.NamePattern{Ident: ident} }

func numberPattern(digits string) *surface.NumberPattern { return &surface.NumberPattern{Digits: digits} }

func freshCtx() *TermContext {
	return &TermContext{Env: tcenv.Default(), Sink: &diagnostic.SliceSink{}}
}

func TestCompilePatternNameResolvesToConstant(t *testing.T) {
	ctx := freshCtx()
	cp := compilePattern(ctx, namePattern("true"), value.NeutralGlobal("Bool"))

	lit, ok := cp.pattern.(*core.LiteralPattern)
	require.True(t, ok, "expected a literal pattern for the `true` constant, got %T", cp.pattern)
	assert.True(t, lit.Value.B)
	assert.Nil(t, cp.bound, "a constant pattern introduces no binder")
}

func TestCompilePatternNameIntroducesBinder(t *testing.T) {
	ctx := freshCtx()
	cp := compilePattern(ctx, namePattern("rest"), &value.IntType{})

	_, ok := cp.pattern.(*core.BinderPattern)
	require.True(t, ok)
	require.NotNil(t, cp.bound)
	assert.Equal(t, "rest", cp.bound.label)
}

func TestCompilePatternOutOfRangeLiteralReportsDiagnostic(t *testing.T) {
	ctx := freshCtx()
	u8, ok := ctx.Env.Global("U8")
	require.True(t, ok)

	cp := compilePattern(ctx, numberPattern("256"), u8.Value)

	_, ok = cp.pattern.(*core.BinderPattern)
	assert.True(t, ok, "an out-of-range literal pattern falls back to a binder so matching does not cascade")

	diags := ctx.Sink.(*diagnostic.SliceSink).Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "ELAB018", diags[0].Code)
}

func matchTerm(scrutinee surface.Term, clauses ...surface.MatchClause) *surface.Match {
	return &surface.Match{Scrutinee: scrutinee, Clauses: clauses}
}

func TestCheckMatchIntExhaustiveWithDefault(t *testing.T) {
	ctx := freshCtx()
	m := matchTerm(ann(number("2"), name("U8")),
		surface.MatchClause{Pattern: numberPattern("1"), Body: number("100")},
		surface.MatchClause{Pattern: numberPattern("2"), Body: number("200")},
		surface.MatchClause{Pattern: namePattern("_"), Body: number("0")},
	)

	term := Check(ctx, m, &value.IntType{})
	assert.Empty(t, ctx.Sink.(*diagnostic.SliceSink).Diagnostics)

	elim, ok := term.(*core.IntElim)
	require.True(t, ok, "expected an IntElim, got %T", term)
	assert.Len(t, elim.Branches, 2)
	assert.NotNil(t, elim.Default)
}

func TestCheckMatchIntMissingDefaultReportsDiagnostic(t *testing.T) {
	ctx := freshCtx()
	m := matchTerm(ann(number("1"), name("U8")),
		surface.MatchClause{Pattern: numberPattern("1"), Body: number("100")},
	)

	Check(ctx, m, &value.IntType{})
	diags := ctx.Sink.(*diagnostic.SliceSink).Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "ELAB014", diags[0].Code)
}

func TestCheckMatchIntDuplicateLiteralIsUnreachable(t *testing.T) {
	ctx := freshCtx()
	m := matchTerm(ann(number("1"), name("U8")),
		surface.MatchClause{Pattern: numberPattern("1"), Body: number("100")},
		surface.MatchClause{Pattern: numberPattern("1"), Body: number("999")},
		surface.MatchClause{Pattern: namePattern("_"), Body: number("0")},
	)

	Check(ctx, m, &value.IntType{})
	diags := ctx.Sink.(*diagnostic.SliceSink).Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "ELAB015", diags[0].Code)
	assert.Equal(t, diagnostic.Warning, diags[0].Severity)
}

func TestCheckMatchBoolFromTrueFalseNames(t *testing.T) {
	ctx := freshCtx()
	m := matchTerm(ann(name("true"), name("Bool")),
		surface.MatchClause{Pattern: namePattern("true"), Body: number("1")},
		surface.MatchClause{Pattern: namePattern("false"), Body: number("0")},
	)

	term := Check(ctx, m, &value.IntType{})
	assert.Empty(t, ctx.Sink.(*diagnostic.SliceSink).Diagnostics)

	_, ok := term.(*core.BoolElim)
	assert.True(t, ok, "expected a BoolElim for an exhaustive true/false match, got %T", term)
}

func TestCheckMatchUnsupportedScrutineeType(t *testing.T) {
	ctx := freshCtx()
	m := matchTerm(name("String"))
	term := Check(ctx, m, &value.IntType{})
	assert.True(t, core.IsError(term))

	diags := ctx.Sink.(*diagnostic.SliceSink).Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "ELAB013", diags[0].Code)
}

func ann(term, typ surface.Term) *surface.Ann { return &surface.Ann{Expr: term, Type: typ} }
