// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig before the
// grid is filled.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn overrides the per-cell value generator. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *builderConfig) { c.valueFn = fn }
}

// WithConstantValue fills every chosen cell with v (see ConstantValueFn).
func WithConstantValue(v int64) BuilderOption { return WithValueFn(ConstantValueFn(v)) }

// WithUniformValue draws cell values from [lo,hi] (see UniformValueFn).
func WithUniformValue(lo, hi int64) BuilderOption { return WithValueFn(UniformValueFn(lo, hi)) }
