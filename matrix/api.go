// SPDX-License-Identifier: MIT

// Package matrix: thin public facade with convenience constructors.
package matrix

// NewZeros returns an r×c zero matrix; alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n<=0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a zero Dense with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// MatVecMul is an alias of MatVec.
func MatVecMul(m Matrix, x []int64) ([]int64, error) { return MatVec(m, x) }
