package nbe

import (
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// IsSubtype reports whether sub is a subtype of sup: reflexivity
// (alpha-equality) plus two widenings, the first dispatched on value
// shape and the second on global names —
//
//   - interval containment: IntType(lo1, hi1) <: IntType(lo2, hi2) iff
//     lo2 <= lo1 and hi1 <= hi2, treating a nil bound as the
//     corresponding infinity. Every sized integer format (U8, S32Le, ...)
//     already normalizes straight to its IntType by way of its global
//     definition (see tcenv.Default), so this one rule is also what makes
//     e.g. U16Le <: Int[0, 65535] hold, with no name ever inspected.
//   - endianness erasure: F32Le and F32Be are subtypes of F32, and F64Le
//     and F64Be are subtypes of F64. Unlike the integer formats these four
//     globals carry no value of their own (there is no interval
//     representation for a float), so they remain bare neutral globals
//     after normalization and must be special-cased by name here; this is
//     the one place name-matching survives, because nothing else
//     distinguishes a float format from its width's plain type.
func IsSubtype(env *tcenv.Env, sub, sup value.Value) bool {
	if subInt, ok := sub.(*value.IntType); ok {
		if supInt, ok := sup.(*value.IntType); ok {
			return boundAtLeast(env, supInt.Min, subInt.Min) && boundAtMost(env, subInt.Max, supInt.Max)
		}
		return false
	}

	if subName, ok := value.GlobalApp(sub); ok {
		if supName, ok := value.GlobalApp(sup); ok {
			if (subName == "F32Le" || subName == "F32Be") && supName == "F32" {
				return true
			}
			if (subName == "F64Le" || subName == "F64Be") && supName == "F64" {
				return true
			}
		}
	}

	return Equal(env, sub, sup)
}

// boundAtLeast reports whether lower <= value, where a nil lower means
// -infinity (always satisfied) and a nil value means -infinity (only
// satisfied when lower is also nil).
func boundAtLeast(env *tcenv.Env, lower, val value.Value) bool {
	if lower == nil {
		return true
	}
	if val == nil {
		return false
	}
	lo, lok := value.IntBound(lower)
	v, vok := value.IntBound(val)
	if lok && vok {
		return lo.Cmp(v) <= 0
	}
	return Equal(env, lower, val)
}

// boundAtMost reports whether value <= upper, where a nil upper means
// +infinity (always satisfied) and a nil value means +infinity (only
// satisfied when upper is also nil).
func boundAtMost(env *tcenv.Env, val, upper value.Value) bool {
	if upper == nil {
		return true
	}
	if val == nil {
		return false
	}
	v, vok := value.IntBound(val)
	hi, hok := value.IntBound(upper)
	if vok && hok {
		return v.Cmp(hi) <= 0
	}
	return Equal(env, val, upper)
}
