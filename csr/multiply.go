// SPDX-License-Identifier: MIT

// Package csr: sparse matrix × dense vector.
package csr

import (
	"fmt"
	"math"
)

// zeroSum is the initial accumulator of every row dot product.
const zeroSum int64 = 0

// Multiply computes y = m·x using only the stored non-zeros.
// MAIN DESCRIPTION:
//   - For every row r, y[r] = Σ values[i]·x[colIndices[i]] over
//     i ∈ [rowOffsets[r], rowOffsets[r+1]); rows without entries yield 0.
//
// Implementation:
//   - Stage 1: reject nil and released structures.
//   - Stage 2: the single dimension check: len(x) must equal the row count
//     implied by the offsets (len(rowOffsets)-1). A structure wider than x is
//     rejected too, so the kernel can never index past the vector.
//   - Stage 3: allocate y and run the row kernel (checked or wrapping).
//
// Returns:
//   - A new slice of length rows owned by the caller.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (no partial output),
//     ErrOverflow (only when built WithOverflowCheck).
//
// Complexity:
//   - Time O(nnz + rows), Space O(rows).
//
// Notes:
//   - Without WithOverflowCheck arithmetic is plain int64 and wraps silently.
func Multiply(m *Matrix, x []int64) ([]int64, error) {
	if m == nil {
		return nil, csrErrorf(opMultiply, ErrNilMatrix)
	}
	if m.released {
		return nil, csrErrorf(opMultiply, ErrReleased)
	}
	rows := len(m.rowOffsets) - 1
	if len(x) != rows {
		return nil, csrErrorf(opMultiply,
			fmt.Errorf("vector length %d, want %d: %w", len(x), rows, ErrDimensionMismatch))
	}
	if m.cols > len(x) {
		return nil, csrErrorf(opMultiply,
			fmt.Errorf("matrix has %d columns, vector length %d: %w", m.cols, len(x), ErrDimensionMismatch))
	}

	y := make([]int64, rows)
	if m.checkOverflow {
		if err := m.mulVecChecked(x, y); err != nil {
			return nil, csrErrorf(opMultiply, err)
		}

		return y, nil
	}
	m.mulVec(x, y)

	return y, nil
}

// MulVec is the method form of Multiply.
func (m *Matrix) MulVec(x []int64) ([]int64, error) { return Multiply(m, x) }

// mulVec is the wrapping kernel. Lengths are validated by the caller.
func (m *Matrix) mulVec(x, y []int64) {
	var r, i int
	var acc int64
	for r = 0; r+1 < len(m.rowOffsets); r++ {
		acc = zeroSum
		for i = m.rowOffsets[r]; i < m.rowOffsets[r+1]; i++ {
			acc += m.values[i] * x[m.colIndices[i]]
		}
		y[r] = acc
	}
}

// mulVecChecked is mulVec with overflow detection on every product and sum.
func (m *Matrix) mulVecChecked(x, y []int64) error {
	var r, i int
	var acc, p int64
	var ok bool
	for r = 0; r+1 < len(m.rowOffsets); r++ {
		acc = zeroSum
		for i = m.rowOffsets[r]; i < m.rowOffsets[r+1]; i++ {
			if p, ok = mulInt64(m.values[i], x[m.colIndices[i]]); !ok {
				return fmt.Errorf("row %d, column %d: product: %w", r, m.colIndices[i], ErrOverflow)
			}
			if acc, ok = addInt64(acc, p); !ok {
				return fmt.Errorf("row %d, column %d: sum: %w", r, m.colIndices[i], ErrOverflow)
			}
		}
		y[r] = acc
	}

	return nil
}

// mulInt64 returns a*b and whether it fits in int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// MinInt64 * -1 wraps to MinInt64 and survives the division test.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return p, false
	}

	return p, p/b == a
}

// addInt64 returns a+b and whether it fits in int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return s, false
	}

	return s, true
}
