// SPDX-License-Identifier: MIT

// Package csr: read-only accessors.
//
// Copy accessors (RowOffsets, ColIndices, Values) return fresh slices so no
// caller ever holds a reference into the structure's storage.
package csr

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcsr/matrix"
)

// Rows returns the row count (0 after Release).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count (0 after Release).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries, rowOffsets[rows].
func (m *Matrix) NNZ() int {
	if len(m.rowOffsets) == 0 {
		return 0
	}

	return m.rowOffsets[len(m.rowOffsets)-1]
}

// OverflowChecked reports whether Multiply detects int64 overflow for m.
func (m *Matrix) OverflowChecked() bool { return m.checkOverflow }

// RowOffsets returns a copy of the row offset array (len rows+1).
func (m *Matrix) RowOffsets() []int { return slices.Clone(m.rowOffsets) }

// ColIndices returns a copy of the column index array (len nnz).
func (m *Matrix) ColIndices() []int { return slices.Clone(m.colIndices) }

// Values returns a copy of the value array (len nnz).
func (m *Matrix) Values() []int64 { return slices.Clone(m.values) }

// checkRow validates r against the live structure.
func (m *Matrix) checkRow(op string, r int) error {
	if m.released {
		return csrErrorf(op, ErrReleased)
	}
	if r < 0 || r >= m.rows {
		return csrErrorf(op, fmt.Errorf("row %d: %w", r, ErrOutOfRange))
	}

	return nil
}

// RowNNZ returns the number of stored entries in row r.
// Errors: ErrReleased, ErrOutOfRange.
func (m *Matrix) RowNNZ(r int) (int, error) {
	if err := m.checkRow(opRowNNZ, r); err != nil {
		return 0, err
	}

	return m.rowOffsets[r+1] - m.rowOffsets[r], nil
}

// At returns the value at (r, c); absent positions read as 0.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: binary search for c inside row r's column range.
//
// Errors: ErrReleased, ErrOutOfRange.
// Complexity: O(log(row nnz)).
func (m *Matrix) At(r, c int) (int64, error) {
	if err := m.checkRow(opAt, r); err != nil {
		return 0, err
	}
	if c < 0 || c >= m.cols {
		return 0, csrErrorf(opAt, fmt.Errorf("column %d: %w", c, ErrOutOfRange))
	}

	return m.lookup(r, c), nil
}

// lookup is At without checks.
func (m *Matrix) lookup(r, c int) int64 {
	lo, hi := m.rowOffsets[r], m.rowOffsets[r+1]
	if k, found := slices.BinarySearch(m.colIndices[lo:hi], c); found {
		return m.values[lo+k]
	}

	return 0
}

// Do visits every stored entry in row-major order; it stops early when f
// returns false. No-op after Release.
// Complexity: O(nnz + rows).
func (m *Matrix) Do(f func(r, c int, v int64) bool) {
	var r, i int
	for r = 0; r+1 < len(m.rowOffsets); r++ {
		for i = m.rowOffsets[r]; i < m.rowOffsets[r+1]; i++ {
			if !f(r, m.colIndices[i], m.values[i]) {
				return
			}
		}
	}
}

// ToDense expands the structure back into a dense grid; absent positions are 0.
// For any grid g, FromDense(g) followed by ToDense reproduces g.
//
// Errors: ErrReleased.
// Complexity: O(rows*cols + nnz).
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	if m.released {
		return nil, csrErrorf(opToDense, ErrReleased)
	}
	d, err := matrix.NewDense(m.rows, m.cols)
	if err != nil {
		return nil, csrErrorf(opToDense, err)
	}
	m.Do(func(r, c int, v int64) bool {
		err = d.Set(r, c, v)
		return err == nil
	})
	if err != nil {
		return nil, csrErrorf(opToDense, err)
	}

	return d, nil
}
