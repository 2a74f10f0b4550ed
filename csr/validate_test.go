// SPDX-License-Identifier: MIT
package csr_test

import (
	"testing"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/stretchr/testify/require"
)

// TestValidate_DetectsCorruption rewrites the arrays of a valid structure and
// checks that each invariant violation is reported.
func TestValidate_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(off, cols []int, vals []int64) ([]int, []int, []int64)
		want    string
	}{
		{
			name: "offsets length",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				return off[:2], cols, vals
			},
			want: "len(rowOffsets)",
		},
		{
			name: "first offset",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				off[0] = 1
				return off, cols, vals
			},
			want: "rowOffsets[0]",
		},
		{
			name: "decreasing offsets",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				off[1] = 3 // row 1 would end before it starts
				off[2] = 2
				return off, cols, vals
			},
			want: "decrease",
		},
		{
			name: "array lengths",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				return off, cols, vals[:len(vals)-1]
			},
			want: "len(colIndices)",
		},
		{
			name: "column out of range",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				cols[1] = 2
				return off, cols, vals
			},
			want: "outside",
		},
		{
			name: "unsorted columns",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				cols[2] = 0 // row 1 becomes [0 0]
				return off, cols, vals
			},
			want: "not after",
		},
		{
			name: "stored zero",
			corrupt: func(off, cols []int, vals []int64) ([]int, []int, []int64) {
				vals[0] = 0
				return off, cols, vals
			},
			want: "stored zero",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// 3×2 grid with two entries in row 1: offsets [0 1 3 4].
			m := MustBuild(t, [][]int64{{1, 0}, {2, 3}, {0, 4}})
			require.NoError(t, m.Validate())

			csr.CorruptForTest(m, tc.corrupt)

			err := m.Validate()
			require.ErrorIs(t, err, csr.ErrCorrupt)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestValidate_Nil checks the nil receiver.
func TestValidate_Nil(t *testing.T) {
	var m *csr.Matrix
	require.ErrorIs(t, m.Validate(), csr.ErrNilMatrix)
}
