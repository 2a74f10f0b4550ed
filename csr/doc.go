// SPDX-License-Identifier: MIT

// Package csr builds Compressed Sparse Row (CSR) matrices from dense integer
// grids and multiplies them by dense vectors.
//
// 🚀 What is CSR?
//
//	A sparse layout that keeps, per row, only the non-zero values and their
//	column positions:
//	  • rowOffsets  - len rows+1; row r lives in [rowOffsets[r], rowOffsets[r+1])
//	  • colIndices  - column of every stored value, ascending within a row
//	  • values      - the non-zero values, parallel to colIndices
//
// ✨ Key features:
//   - one-pass construction from [][]int64 (Build) or a matrix.Matrix (FromDense)
//   - selectable allocation policy: worst-case then trim, two-pass exact, or amortized growth
//   - SpMV in O(nnz + rows) with an optional int64 overflow check
//   - explicit, idempotent Release that drops all three arrays together
//   - gonum interoperability through a read-only mat.Matrix view
//
// ⚙️ Usage:
//
//	m, err := csr.Build(2, 3, [][]int64{{1, 0, 2}, {0, 0, 3}})
//	if err != nil { ... }
//	defer m.Release()
//	y, err := csr.Multiply(m, []int64{1, 1})
//	if errors.Is(err, csr.ErrDimensionMismatch) { ... }
//
// Complexity:
//
//   - Build / FromDense: O(rows·cols) time; transient memory depends on AllocPolicy.
//   - Multiply:          O(nnz + rows) time, O(rows) for the result.
//
// A Matrix is immutable after construction and may be read from several
// goroutines; Release must not race with readers.
package csr
