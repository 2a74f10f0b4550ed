// SPDX-License-Identifier: MIT

// Package csr: construction from dense grids.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrInvalidDimensions).
//   - The grid must have exactly rows rows of exactly cols columns (else ErrBadShape).
//   - Zero means "absent"; every other value is stored.
//   - No partial structure is ever returned together with an error.
//
// Determinism:
//   - Row-major scan (r asc, c asc); column indices come out strictly
//     increasing within each row without any sorting.

package csr

import (
	"fmt"

	"github.com/katalvlaran/lvcsr/matrix"
)

// rowSource yields row r of a dense grid. The returned slice is only read.
type rowSource func(r int) ([]int64, error)

// Build converts a row-major dense grid into a CSR structure.
// MAIN DESCRIPTION:
//   - Scan the grid once in row-major order; append the column index and value
//     of every non-zero, and close row r by recording the running count in
//     rowOffsets[r+1].
//
// Implementation:
//   - Stage 1: validate rows/cols > 0 and the grid shape against them.
//   - Stage 2: resolve options (allocation policy, overflow policy).
//   - Stage 3: scan with the selected allocation policy.
//
// Inputs:
//   - rows, cols: declared shape.
//   - grid: rows×cols values; grid[r][c] is row r, column c.
//   - opts: WithAllocPolicy, WithOverflowCheck.
//
// Returns:
//   - *Matrix satisfying every CSR invariant.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilMatrix (nil grid), ErrBadShape.
//
// Complexity:
//   - Time O(rows*cols); extra memory depends on AllocPolicy.
//
// Notes:
//   - An all-zero grid is valid: offsets all 0 and empty (non-nil) arrays.
func Build(rows, cols int, grid [][]int64, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(opBuild, fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if grid == nil {
		return nil, csrErrorf(opBuild, ErrNilMatrix)
	}
	if len(grid) != rows {
		return nil, csrErrorf(opBuild, fmt.Errorf("grid has %d rows, want %d: %w", len(grid), rows, ErrBadShape))
	}
	for r := range grid {
		if len(grid[r]) != cols {
			return nil, csrErrorf(opBuild,
				fmt.Errorf("row %d has %d columns, want %d: %w", r, len(grid[r]), cols, ErrBadShape))
		}
	}

	o := gatherOptions(opts...)

	return scan(rows, cols, func(r int) ([]int64, error) { return grid[r], nil }, o)
}

// FromDense converts a dimension-bound dense matrix into a CSR structure.
// MAIN DESCRIPTION:
//   - Same algorithm as Build; the shape comes from m itself, so there is no
//     declared shape to disagree with.
//
// Implementation:
//   - Fast-path: *matrix.Dense rows are scanned in place via RowView.
//   - Fallback: other matrix.Matrix implementations are read row by row via At
//     into a reused scratch buffer.
//
// Errors:
//   - ErrNilMatrix; errors returned by a foreign implementation's At are wrapped.
//
// Complexity:
//   - Time O(rows*cols).
func FromDense(m matrix.Matrix, opts ...Option) (*Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, csrErrorf(opFromDense, fmt.Errorf("%w: %w", err, ErrNilMatrix))
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(opFromDense, fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	var src rowSource
	if d, ok := m.(*matrix.Dense); ok {
		src = d.RowView
	} else {
		scratch := make([]int64, cols)
		src = func(r int) ([]int64, error) {
			var err error
			for c := 0; c < cols; c++ {
				if scratch[c], err = m.At(r, c); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", r, c, err)
				}
			}
			return scratch, nil
		}
	}

	out, err := scan(rows, cols, src, o)
	if err != nil {
		return nil, csrErrorf(opFromDense, err)
	}

	return out, nil
}

// scan runs the row-major CSR construction over src.
//
// Implementation:
//   - Stage 1: size working storage per policy (rows*cols, exact nnz, or empty).
//   - Stage 2: single row-major pass appending (col, value) pairs; close each row.
//   - Stage 3: AllocWorstCase only: trim to exactly nnz (no-op when fully dense).
func scan(rows, cols int, src rowSource, o Options) (*Matrix, error) {
	var capHint int
	switch o.alloc {
	case AllocTwoPass:
		n, err := countNonZero(rows, src)
		if err != nil {
			return nil, err
		}
		capHint = n
	case AllocGrow:
		capHint = 0
	default:
		capHint = rows * cols
	}

	offsets := make([]int, rows+1) // offsets[0] == 0 by zero-init
	colIdx := make([]int, 0, capHint)
	vals := make([]int64, 0, capHint)

	var r, c int
	var row []int64
	var err error
	for r = 0; r < rows; r++ {
		if row, err = src(r); err != nil {
			return nil, err
		}
		for c = 0; c < cols; c++ {
			if row[c] != 0 {
				colIdx = append(colIdx, c)
				vals = append(vals, row[c])
			}
		}
		offsets[r+1] = len(colIdx) // running nnz closes row r
	}

	if o.alloc == AllocWorstCase && len(colIdx) != cap(colIdx) {
		colIdx = trim(colIdx)
		vals = trim(vals)
	}

	return &Matrix{
		rows:          rows,
		cols:          cols,
		rowOffsets:    offsets,
		colIndices:    colIdx,
		values:        vals,
		checkOverflow: o.checkOverflow,
	}, nil
}

// countNonZero is the first pass of AllocTwoPass.
func countNonZero(rows int, src rowSource) (int, error) {
	n := 0
	for r := 0; r < rows; r++ {
		row, err := src(r)
		if err != nil {
			return 0, err
		}
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}

	return n, nil
}

// trim copies s into a slice whose capacity equals its length.
// The result is non-nil even when s is empty.
func trim[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}
