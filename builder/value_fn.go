// SPDX-License-Identifier: MIT

// Package builder: value distributions for filled cells.
package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces a cell value given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) int64

// DefaultValueFn draws uniformly from [1,9] or returns DefaultValue when rng is nil.
func DefaultValueFn(rng *rand.Rand) int64 {
	if rng == nil {
		return DefaultValue
	}

	return defaultValueMin + rng.Int63n(defaultValueMax-defaultValueMin+1)
}

// ConstantValueFn returns a ValueFn that always yields v.
// Panics if v == 0 (a zero would mean "absent").
func ConstantValueFn(v int64) ValueFn {
	if v == 0 {
		panic("ConstantValueFn: value must be non-zero")
	}

	return func(*rand.Rand) int64 { return v }
}

// UniformValueFn returns a ValueFn sampling uniformly in [lo, hi] inclusive.
// Panics if hi < lo or if the range holds only zero.
// With a nil rng it yields DefaultValue; a zero draw is replaced by the
// generator with DefaultValue as well.
func UniformValueFn(lo, hi int64) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	if lo == 0 && hi == 0 {
		panic("UniformValueFn: range [0,0] has no non-zero values")
	}
	span := uint64(hi-lo) + 1 // 0 only for the full int64 range

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultValue
		}
		if span == 0 {
			return int64(rng.Uint64())
		}

		return lo + int64(rng.Uint64()%span)
	}
}
