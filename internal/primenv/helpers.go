package primenv

import (
	"math/big"

	"github.com/jtojnar/fathom/internal/literal"
	"github.com/jtojnar/fathom/internal/value"
)

func litInt(i int64) literal.Constant {
	return literal.IntFromInt64(i)
}

func asInt(v value.Value) (*big.Int, bool) {
	lit, ok := v.(*value.Literal)
	if !ok || lit.Value.Kind != literal.KindInt {
		return nil, false
	}
	return lit.Value.I, true
}

func intBinOp(f func(a, b int64) int64) func([]value.Value) (value.Value, bool) {
	return func(args []value.Value) (value.Value, bool) {
		a, ok1 := asInt(args[0])
		b, ok2 := asInt(args[1])
		if !ok1 || !ok2 || !a.IsInt64() || !b.IsInt64() {
			return nil, false
		}
		return &value.Literal{Value: litInt(f(a.Int64(), b.Int64()))}, true
	}
}

func intCmpOp(f func(a, b int64) bool) func([]value.Value) (value.Value, bool) {
	return func(args []value.Value) (value.Value, bool) {
		a, ok1 := asInt(args[0])
		b, ok2 := asInt(args[1])
		if !ok1 || !ok2 || !a.IsInt64() || !b.IsInt64() {
			return nil, false
		}
		return &value.Literal{Value: literal.Bool(f(a.Int64(), b.Int64()))}, true
	}
}
