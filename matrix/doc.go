// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer grid consumed by the csr package.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 matrix whose dimensions are bound to its
//     storage, so a grid with inconsistent row lengths cannot be constructed.
//   - FromRows / NewDenseFrom: checked ingestion of [][]int64 and flat data.
//   - MatVec: the plain nested-loop dense product, used as the reference
//     result for sparse kernels.
//   - Validators: shared shape and vector-length checks returning sentinels.
//
// All public entry points return sentinel errors (see errors.go) and never
// panic on user input.
package matrix
