// Package lvcsr is a small toolkit for Compressed Sparse Row (CSR) integer
// matrices: build the three CSR arrays from a dense grid, multiply by a dense
// vector in O(nnz + rows), and dispose of the structure when done.
//
// 🚀 What is in the box?
//
//	• matrix/ - dense row-major int64 grid with bound dimensions + reference MatVec
//	• csr/    - CSR structure, Build/FromDense, Multiply, Release, Validate, gonum view
//	• builder/ - deterministic generators (Full, Diagonal, Banded, RandomSparse)
//	• spy/    - sparsity-pattern plots (PNG/SVG) via gonum/plot
//	• cmd/csrdemo - CLI printing row offsets, column indices, values and the product
//
// Quick example:
//
//	    [3 0 1]        row offsets:    0, 2, 3, 3
//	    [0 4 0]   ⇒    column indices: 0, 2, 1
//	    [0 0 0]        values:         3, 1, 4
//
// Guarantees:
//
//   - Column indices are strictly increasing within each row; zeros are never stored.
//   - Dimension mismatches are reported as errors, never as partial results.
//   - Library packages do not log and never panic on user input.
//
//	go get github.com/katalvlaran/lvcsr/csr
package lvcsr
