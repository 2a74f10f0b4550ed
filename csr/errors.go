// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (operation, row, lengths) is attached with %w at the detection site.
//   • Kernels never panic on user input; option constructors panic on
//     nonsensical arguments (programmer error).

package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that rows or cols is not positive.
	ErrInvalidDimensions = errors.New("csr: dimensions must be > 0")

	// ErrBadShape indicates that the supplied grid does not have the declared
	// number of rows, or a row does not have the declared number of columns.
	ErrBadShape = errors.New("csr: grid does not match declared shape")

	// ErrNilMatrix indicates a nil grid, dense matrix or CSR structure.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrDimensionMismatch indicates that the vector length does not match the
	// row count implied by the row offsets. No result is produced.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrReleased indicates use of a structure after Release.
	ErrReleased = errors.New("csr: matrix released")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrOverflow indicates int64 overflow during a checked multiplication
	// (see WithOverflowCheck).
	ErrOverflow = errors.New("csr: integer overflow")

	// ErrCorrupt indicates that a structure violates a CSR invariant.
	ErrCorrupt = errors.New("csr: invariant violated")

	// ErrUnknownPolicy indicates an unrecognized allocation policy name.
	ErrUnknownPolicy = errors.New("csr: unknown allocation policy")
)

// Operation tags for uniform error wrapping.
const (
	opBuild     = "Build"
	opFromDense = "FromDense"
	opMultiply  = "Multiply"
	opAt        = "At"
	opRowNNZ    = "RowNNZ"
	opToDense   = "ToDense"
	opValidate  = "Validate"
)

// csrErrorf wraps err with an operation tag; err must be non-nil.
func csrErrorf(op string, err error) error {
	return fmt.Errorf("csr.%s: %w", op, err)
}
