// SPDX-License-Identifier: MIT

// Package builder provides deterministic generators of dense int64 grids used
// as CSR inputs in tests, examples, benchmarks and the csrdemo CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:      a function that fills a *matrix.Dense using the resolved config.
//     – BuildDense:       allocates a rows×cols zero grid and applies constructors in order.
//   - Ready-made generators (thin wrappers over BuildDense):
//     – Zero, Full, Diagonal, Banded, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:    mutates builderConfig before use (WithSeed, WithRand, WithValueFn).
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:   uniform in [1,9] with an RNG, DefaultValue without one.
//     – ConstantValueFn:  fixed non-zero value.
//     – UniformValueFn:   uniform in [lo,hi], zero redrawn as DefaultValue.
//
// Guarantees:
//
//   - A cell a constructor decides to fill is never zero: a ValueFn result of 0
//     is replaced by DefaultValue, so "non-zero pattern" and "stored entries" agree.
//   - Determinism: same shape, options, seed and constructor order ⇒ identical grids.
//     Stochastic trials run in row-major order (r asc, c asc).
//   - Fast-fail on meaningless option arguments via panics in option constructors;
//     runtime parameter errors are sentinel errors wrapped with %w.
//
// Complexity: every constructor is O(rows*cols) time and O(1) extra space.
package builder
