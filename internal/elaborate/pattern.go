package elaborate

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/value"
)

// compiledPattern is the result of compiling one surface.Pattern against
// a scrutinee's type: the core pattern to match against, and — for a
// pattern that introduces a fresh variable — the label/name/type a
// clause's body should see it bound as.
type compiledPattern struct {
	pattern core.Pattern
	bound   *scope
}

// compilePattern turns a surface pattern into a core.Pattern. A
// NamePattern whose identifier resolves to an existing nullary constant
// global (true, false, ...) compiles to an equality test against that
// constant, exactly like a literal pattern; any other NamePattern
// introduces a fresh binder, the same way a wildcard or catch-all clause
// would.
func compilePattern(ctx *TermContext, p surface.Pattern, scrutineeTy value.Value) compiledPattern {
	switch p := p.(type) {
	case *surface.NumberPattern:
		c, decision := decideNumberLiteral(scrutineeTy, p.Digits)
		switch decision {
		case literalOK:
			return compiledPattern{pattern: &core.LiteralPattern{Value: c}}
		case literalOutOfRange:
			ctx.Sink.Report(diagnostic.LiteralOutOfRange(p.Span(), scrutineeTy))
			return compiledPattern{pattern: &core.BinderPattern{Name: ident.Fresh("_")}}
		default:
			ctx.Sink.Report(diagnostic.UnsupportedPatternType(p.Span(), scrutineeTy))
			return compiledPattern{pattern: &core.BinderPattern{Name: ident.Fresh("_")}}
		}

	case *surface.NamePattern:
		if g, ok := ctx.Env.Global(p.Ident); ok {
			if lit, ok := g.Value.(*value.Literal); ok {
				return compiledPattern{pattern: &core.LiteralPattern{Value: lit.Value}}
			}
		}
		name := ident.Fresh(p.Ident)
		return compiledPattern{
			pattern: &core.BinderPattern{Name: name},
			bound:   &scope{label: p.Ident, name: name, typ: scrutineeTy},
		}

	default:
		ctx.Sink.Report(diagnostic.UnsupportedPatternType(p.Span(), scrutineeTy))
		return compiledPattern{pattern: &core.BinderPattern{Name: ident.Fresh("_")}}
	}
}

// checkMatch compiles a match expression against an expected result
// type. The scrutinee must synthesize to Bool or an integer interval,
// bounded or not (anything else has no pattern-matchable shape in this
// language); once compiled it becomes a core.BoolElim or core.IntElim
// depending on which.
func checkMatch(ctx *TermContext, m *surface.Match, expected value.Value) core.Term {
	scrutineeTerm, scrutineeTy := Synth(ctx, m.Scrutinee)
	if core.IsError(scrutineeTerm) {
		return core.NewError(m.Span())
	}

	_, isInt := scrutineeTy.(*value.IntType)
	isBool := isBoolType(scrutineeTy)
	if !isBool && !isInt {
		ctx.Sink.Report(diagnostic.UnsupportedPatternType(m.Scrutinee.Span(), scrutineeTy))
		return core.NewError(m.Span())
	}
	if len(m.Clauses) == 0 {
		ctx.Sink.Report(diagnostic.AmbiguousCase(m.Span()))
		return core.NewError(m.Span())
	}

	type compiled struct {
		pat  core.Pattern
		body core.Term
	}

	var clauses []compiled
	var defaultBody core.Term
	seenInts := map[string]bool{}
	seenBool := map[bool]bool{}
	seenDefault := false

	for _, clause := range m.Clauses {
		cp := compilePattern(ctx, clause.Pattern, scrutineeTy)

		unreachable := seenDefault
		if !unreachable {
			switch pat := cp.pattern.(type) {
			case *core.LiteralPattern:
				switch pat.Value.Kind {
				case literal.KindInt:
					key := pat.Value.I.String()
					if seenInts[key] {
						unreachable = true
					}
					seenInts[key] = true
				case literal.KindBool:
					if seenBool[pat.Value.B] {
						unreachable = true
					}
					seenBool[pat.Value.B] = true
				}
			case *core.BinderPattern:
				seenDefault = true
			}
		}
		if unreachable {
			ctx.Sink.Report(diagnostic.UnreachablePattern(clause.Pattern.Span()))
		}

		bodyCtx := ctx
		if cp.bound != nil {
			bodyCtx = ctx.withLocal(cp.bound.label, cp.bound.name, cp.bound.typ)
		}
		bodyTerm := Check(bodyCtx, clause.Body, expected)

		if unreachable {
			continue
		}
		if _, ok := cp.pattern.(*core.BinderPattern); ok {
			defaultBody = bodyTerm
			continue
		}
		clauses = append(clauses, compiled{pat: cp.pattern, body: bodyTerm})
	}

	if isBool {
		var trueBody, falseBody core.Term
		for _, c := range clauses {
			lit := c.pat.(*core.LiteralPattern)
			if lit.Value.B {
				trueBody = c.body
			} else {
				falseBody = c.body
			}
		}
		if trueBody == nil {
			trueBody = defaultBody
		}
		if falseBody == nil {
			falseBody = defaultBody
		}
		if trueBody == nil || falseBody == nil {
			ctx.Sink.Report(diagnostic.NoDefaultPattern(m.Span()))
			return core.NewError(m.Span())
		}
		return core.NewBoolElim(m.Span(), scrutineeTerm, trueBody, falseBody)
	}

	if defaultBody == nil {
		ctx.Sink.Report(diagnostic.NoDefaultPattern(m.Span()))
		defaultBody = core.NewError(m.Span())
	}
	branches := make([]core.IntBranch, 0, len(clauses))
	for _, c := range clauses {
		lit := c.pat.(*core.LiteralPattern)
		branches = append(branches, core.IntBranch{Value: lit.Value.I, Body: c.body})
	}
	return core.NewIntElim(m.Span(), scrutineeTerm, branches, defaultBody)
}
