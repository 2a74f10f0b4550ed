// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached at the detection site with %w.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooSmall → ErrInvalidBand → ErrInvalidProbability → ErrNeedRandSource.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter (rows, cols, n) is below 1.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidBand indicates a negative lower or upper bandwidth.
var ErrInvalidBand = errors.New("builder: invalid band")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs a non-nil
// *rand.Rand (WithSeed or WithRand) for 0 < p < 1.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes err with the constructor name, preserving it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
