// SPDX-License-Identifier: MIT

// Package csr: the CSR structure.
package csr

// Matrix is an immutable integer matrix in Compressed Sparse Row form.
//
// Invariants (checked by Validate):
//   - len(rowOffsets) == rows+1, rowOffsets[0] == 0, non-decreasing.
//   - len(colIndices) == len(values) == rowOffsets[rows] (nnz).
//   - for i in [rowOffsets[r], rowOffsets[r+1]): 0 <= colIndices[i] < cols,
//     values[i] != 0, and colIndices is strictly increasing within the row.
//
// The structure exclusively owns its three arrays; accessors hand out copies.
// After Release all arrays are dropped together and the structure reports
// ErrReleased.
type Matrix struct {
	rows, cols int

	rowOffsets []int   // len rows+1
	colIndices []int   // len nnz
	values     []int64 // len nnz, parallel to colIndices

	checkOverflow bool // numeric policy for Multiply (WithOverflowCheck)
	released      bool // set once by Release
}
