// SPDX-License-Identifier: MIT

package csr

import "gonum.org/v1/gonum/mat"

// gonumView adapts a Matrix to gonum's mat.Matrix. It reads the structure
// directly, so it must not outlive a Release.
type gonumView struct{ m *Matrix }

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only float64 view of m usable wherever gonum accepts a
// mat.Matrix (mat.Equal, (*mat.VecDense).MulVec, mat.Formatted, ...).
//
// Notes:
//   - Values are converted with float64(v); magnitudes above 2^53 lose precision.
//   - Out-of-range At panics with mat.ErrRowAccess / mat.ErrColAccess, as gonum's
//     own types do.
func (m *Matrix) Gonum() mat.Matrix { return gonumView{m: m} }

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v gonumView) Dims() (r, c int) { return v.m.rows, v.m.cols }

func (v gonumView) At(i, j int) float64 {
	if i < 0 || i >= v.m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.m.cols {
		panic(mat.ErrColAccess)
	}

	return float64(v.m.lookup(i, j))
}

func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }
