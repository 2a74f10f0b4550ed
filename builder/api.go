// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDense(rows, cols, bopts, cons...). Allocates the
//     zero grid, resolves cfg, runs cons in order.
//   - Ready-made generators below are one-line compositions over BuildDense.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical grids.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcsr/matrix"
)

// Constructor applies a deterministic fill to d using the resolved
// builderConfig. Constructors validate their own parameters first and leave d
// untouched when they fail.
type Constructor func(d *matrix.Dense, cfg builderConfig) error

// BuildDense allocates a rows×cols zero grid, resolves the builder
// configuration from bopts and applies all constructors in order. Later
// constructors overwrite cells written by earlier ones.
//
// Errors:
//   - ErrTooSmall for rows<1 or cols<1.
//   - Constructor errors wrapped as "BuildDense: %w"; no partial grid is returned.
//
// Complexity: O(rows*cols) for the allocation plus Σ cost of constructors.
func BuildDense(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*matrix.Dense, error) {
	if err := validateDims(MethodBuildDense, rows, cols); err != nil {
		return nil, err
	}
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, builderErrorf(MethodBuildDense, err)
	}
	cfg := newBuilderConfig(bopts...)
	for i, con := range cons {
		if con == nil {
			continue
		}
		if err = con(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: constructor %d: %w", MethodBuildDense, i, err)
		}
	}

	return d, nil
}

// Zero returns a rows×cols all-zero grid.
func Zero(rows, cols int) (*matrix.Dense, error) {
	return BuildDense(rows, cols, nil)
}

// Full returns a rows×cols grid with every cell non-zero.
func Full(rows, cols int, opts ...BuilderOption) (*matrix.Dense, error) {
	return BuildDense(rows, cols, opts, FillAll())
}

// Diagonal returns an n×n grid whose only non-zeros lie on the main diagonal.
func Diagonal(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	return BuildDense(n, n, opts, FillDiagonal())
}

// Banded returns an n×n grid whose non-zeros are exactly the cells with
// -lower ≤ c-r ≤ upper.
func Banded(n, lower, upper int, opts ...BuilderOption) (*matrix.Dense, error) {
	return BuildDense(n, n, opts, FillBand(lower, upper))
}

// RandomSparse returns a rows×cols grid where each cell is non-zero
// independently with probability p.
func RandomSparse(rows, cols int, p float64, opts ...BuilderOption) (*matrix.Dense, error) {
	return BuildDense(rows, cols, opts, FillRandom(p))
}
