// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_random_sparse.go - Bernoulli fill: each cell non-zero with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//     p=0 leaves the grid untouched; p=1 fills every cell, with or without RNG.
//
// Determinism:
//   - Trial order r asc, c asc. For each cell one rng.Float64 draw decides
//     inclusion; an included cell then draws its value. Fixed seed ⇒ fixed grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcsr/matrix"
)

// FillRandom returns a Constructor that sets each cell non-zero independently
// with probability p.
// Complexity: O(rows*cols) trials.
func FillRandom(p float64) Constructor {
	return func(d *matrix.Dense, cfg builderConfig) error {
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}
		if p == MaxProbability {
			return fillWhere(d, cfg, func(int, int) bool { return true })
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, fmt.Errorf("p=%g: %w", p, ErrNeedRandSource))
		}

		rng := cfg.rng
		return fillWhere(d, cfg, func(int, int) bool { return rng.Float64() < p })
	}
}
