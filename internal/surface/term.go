// Package surface defines the upstream AST contract: the term and item
// shapes a parser (not built here, by design) would
// produce, and that internal/elaborate consumes. Surface modules in this
// repository are constructed directly, either by hand in tests or by the
// small fixture set embedded in cmd/fathomcheck.
package surface

import "github.com/jtojnar/fathom/internal/span"

// Term is the sealed sum type of surface terms.
type Term interface {
	Span() span.Span
	String() string
	isTerm()
}

type node struct{ Sp span.Span }

func (n node) Span() span.Span { return n.Sp }

// Name is a reference to an identifier, resolved during elaboration
// against either the universe keywords (Type/Format/Kind), a previously
// elaborated item, or a pre-declared global.
type Name struct {
	node
	Ident string
}

func (*Name) isTerm() {}
func (n *Name) String() string { return n.Ident }

// Paren is an explicitly parenthesized term, preserved so diagnostics can
// report spans matching what the user wrote.
type Paren struct {
	node
	Inner Term
}

func (*Paren) isTerm() {}
func (p *Paren) String() string { return "(" + p.Inner.String() + ")" }

// Ann is an explicit type ascription `term : type`.
type Ann struct {
	node
	Expr Term
	Type Term
}

func (*Ann) isTerm() {}
func (a *Ann) String() string { return a.Expr.String() + " : " + a.Type.String() }

// NumberLiteral is an opaque digit string: lexing decimal/hex/float
// shape is out of scope, so the elaborator only ever sees the raw digits
// and decides, from the expected type, which literal.Kind they denote.
type NumberLiteral struct {
	node
	Digits string
}

func (*NumberLiteral) isTerm() {}
func (n *NumberLiteral) String() string { return n.Digits }

// If is a boolean conditional.
type If struct {
	node
	Cond    Term
	IfTrue  Term
	IfFalse Term
}

func (*If) isTerm() {}
func (i *If) String() string {
	return "if " + i.Cond.String() + " then " + i.IfTrue.String() + " else " + i.IfFalse.String()
}

// MatchClause is one `pattern => body` arm of a Match.
type MatchClause struct {
	Pattern Pattern
	Body    Term
}

// Match is case analysis over a scrutinee; always ambiguous to synthesize
// (see diagnostic.AmbiguousCase), so it only type-checks in check mode.
type Match struct {
	node
	Scrutinee Term
	Clauses   []MatchClause
}

func (*Match) isTerm() {}
func (m *Match) String() string { return "match " + m.Scrutinee.String() + " { ... }" }

// Error is a placeholder surface term for a span the (absent) parser
// could not make sense of; the elaborator maps it straight to
// core.Error without reporting a further diagnostic.
type Error struct{ node }

func (*Error) isTerm() {}
func (*Error) String() string { return "<error>" }

// Pattern is the sealed sum type of surface patterns.
type Pattern interface {
	Span() span.Span
	String() string
	isPattern()
}

// NumberPattern matches an exact numeric literal, same opaque-digits
// representation as NumberLiteral.
type NumberPattern struct {
	node
	Digits string
}

func (*NumberPattern) isPattern() {}
func (p *NumberPattern) String() string { return p.Digits }

// NamePattern is either a wildcard/default arm (a bare binder) or, for
// the boolean scrutinee case, the literal identifier true/false.
type NamePattern struct {
	node
	Ident string
}

func (*NamePattern) isPattern() {}
func (p *NamePattern) String() string { return p.Ident }
