// SPDX-License-Identifier: MIT

// Package builder: parameter checks shared by the constructors.
package builder

import (
	"fmt"
	"math"
)

// validateDims ensures rows, cols ≥ MinDim.
func validateDims(method string, rows, cols int) error {
	if rows < MinDim || cols < MinDim {
		return builderErrorf(method, fmt.Errorf("rows=%d cols=%d, want ≥ %d: %w", rows, cols, MinDim, ErrTooSmall))
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, fmt.Errorf("p=%g not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability))
	}

	return nil
}

// validateBand ensures both bandwidths are non-negative.
func validateBand(method string, lower, upper int) error {
	if lower < 0 || upper < 0 {
		return builderErrorf(method, fmt.Errorf("lower=%d upper=%d: %w", lower, upper, ErrInvalidBand))
	}

	return nil
}
