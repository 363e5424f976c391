package core

import (
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/literal"
)

// Pattern is the sealed sum type of core patterns: a literal to match
// exactly, or a binder that always matches and introduces a name.
type Pattern interface {
	isPattern()
	String() string
}

// LiteralPattern matches a specific literal constant.
type LiteralPattern struct {
	Value literal.Constant
}

func (*LiteralPattern) isPattern() {}
func (p *LiteralPattern) String() string { return p.Value.String() }

// BinderPattern always matches, binding the scrutinee to Name.
type BinderPattern struct {
	Name ident.Name
}

func (*BinderPattern) isPattern() {}
func (p *BinderPattern) String() string { return p.Name.String() }
