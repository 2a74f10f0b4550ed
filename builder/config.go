// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil             (pure/deterministic unless seeded)
//   • valueFn = DefaultValueFn  (DefaultValue without an RNG)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Value generator for filled cells.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins). Nil options are skipped.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// value draws the next cell value; zero is never returned.
func (c builderConfig) value() int64 {
	if v := c.valueFn(c.rng); v != 0 {
		return v
	}

	return DefaultValue
}
