// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_fill.go - deterministic pattern constructors (all, diagonal, band).
//
// Determinism:
//   - Cells are visited row-major (r asc, c asc); cfg.value is drawn once per
//     filled cell in that order, so seeded value functions are reproducible.

package builder

import "github.com/katalvlaran/lvcsr/matrix"

// FillAll fills every cell.
// Complexity: O(rows*cols).
func FillAll() Constructor {
	return func(d *matrix.Dense, cfg builderConfig) error {
		return fillWhere(d, cfg, func(int, int) bool { return true })
	}
}

// FillDiagonal fills cells (i,i) for i < min(rows, cols).
// Complexity: O(rows*cols) visits, min(rows, cols) writes.
func FillDiagonal() Constructor {
	return func(d *matrix.Dense, cfg builderConfig) error {
		return fillWhere(d, cfg, func(r, c int) bool { return r == c })
	}
}

// FillBand fills cells with -lower ≤ c-r ≤ upper. FillBand(0, 0) is FillDiagonal.
//
// Errors: ErrInvalidBand for negative bandwidths.
func FillBand(lower, upper int) Constructor {
	return func(d *matrix.Dense, cfg builderConfig) error {
		if err := validateBand(MethodBanded, lower, upper); err != nil {
			return err
		}

		return fillWhere(d, cfg, func(r, c int) bool { return c-r >= -lower && c-r <= upper })
	}
}

// fillWhere writes cfg.value() into every cell selected by keep.
func fillWhere(d *matrix.Dense, cfg builderConfig, keep func(r, c int) bool) error {
	rows, cols := d.Shape()
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if !keep(r, c) {
				continue
			}
			if err := d.Set(r, c, cfg.value()); err != nil {
				return err
			}
		}
	}

	return nil
}
