// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvcsr/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateVecLen checks nil, short, long and exact vectors.
func TestValidateVecLen(t *testing.T) {
	tests := []struct {
		name string
		x    []int64
		n    int
		want error
	}{
		{name: "nil", x: nil, n: 2, want: matrix.ErrNilMatrix},
		{name: "short", x: []int64{1}, n: 2, want: matrix.ErrDimensionMismatch},
		{name: "long", x: []int64{1, 2, 3}, n: 2, want: matrix.ErrDimensionMismatch},
		{name: "exact", x: []int64{1, 2}, n: 2, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecLen(tc.x, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateRectangular checks the shape rules used by FromRows.
func TestValidateRectangular(t *testing.T) {
	require.NoError(t, matrix.ValidateRectangular([][]int64{{1}, {2}}))
	require.ErrorIs(t, matrix.ValidateRectangular(nil), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateRectangular([][]int64{{1, 2}, {3, 4}, {5}}), matrix.ErrBadShape)
}
