// Package literal defines the Constant type, the tagged variant over the
// handful of literal forms the surface and core languages share.
package literal

import (
	"fmt"
	"math/big"
)

// Kind tags which alternative of Constant is populated.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindF32
	KindF64
	KindChar
	KindString
)

// Constant is an arbitrary-precision-capable literal value. Only the
// field matching Kind is meaningful.
type Constant struct {
	Kind Kind
	B    bool
	I    *big.Int
	F32  float32
	F64  float64
	Ch   rune
	Str  string
}

func Bool(b bool) Constant           { return Constant{Kind: KindBool, B: b} }
func Int(i *big.Int) Constant        { return Constant{Kind: KindInt, I: new(big.Int).Set(i)} }
func IntFromInt64(i int64) Constant  { return Int(big.NewInt(i)) }
func F32(f float32) Constant         { return Constant{Kind: KindF32, F32: f} }
func F64(f float64) Constant         { return Constant{Kind: KindF64, F64: f} }
func Char(r rune) Constant           { return Constant{Kind: KindChar, Ch: r} }
func String(s string) Constant       { return Constant{Kind: KindString, Str: s} }

// Equal reports structural equality between two constants of the same
// kind; constants of different kinds are never equal.
func (c Constant) Equal(other Constant) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case KindBool:
		return c.B == other.B
	case KindInt:
		return c.I.Cmp(other.I) == 0
	case KindF32:
		return c.F32 == other.F32
	case KindF64:
		return c.F64 == other.F64
	case KindChar:
		return c.Ch == other.Ch
	case KindString:
		return c.Str == other.Str
	default:
		return false
	}
}

func (c Constant) String() string {
	switch c.Kind {
	case KindBool:
		if c.B {
			return "true"
		}
		return "false"
	case KindInt:
		return c.I.String()
	case KindF32:
		return fmt.Sprintf("%g", c.F32)
	case KindF64:
		return fmt.Sprintf("%g", c.F64)
	case KindChar:
		return fmt.Sprintf("%q", c.Ch)
	case KindString:
		return fmt.Sprintf("%q", c.Str)
	default:
		return "<invalid constant>"
	}
}
