// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvcsr/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the constructor shape.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                                 // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	err = m.Set(2, 0, 7)                          // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
	require.Contains(t, err.Error(), "Dense.Set(2,0)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 42))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(42), val)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3)) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), orig) // original unchanged

	cv, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), cv) // clone reflects the write
}

// TestStringOutput checks that String() formats the matrix row by row.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, -2}, {3, 4}})

	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}

// TestFromRows covers the happy path and both shape failures.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)

	_, err = matrix.FromRows(nil)                        // no rows at all
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // empty grid is not a matrix

	_, err = matrix.FromRows([][]int64{{}, {}})          // zero-length rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // no columns

	_, err = matrix.FromRows([][]int64{{1, 2}, {3}}) // ragged
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "row 1")
}

// TestFromRowsCopies ensures later writes to the source rows are not observed.
func TestFromRowsCopies(t *testing.T) {
	src := [][]int64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

// TestNewDenseFrom checks flat ingestion and its length guard.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, m.Equal(MustFromRows(t, [][]int64{{1, 2}, {3, 4}})))

	_, err = matrix.NewDenseFrom(2, 2, []int64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowView checks the window contents and that its capacity is clipped.
func TestRowView(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})

	row, err := m.RowView(1)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, row)
	require.Equal(t, 2, cap(row)) // append cannot spill into row 2

	_, err = m.RowView(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNNZAndEqual covers counting and equality edge cases.
func TestNNZAndEqual(t *testing.T) {
	a := MustFromRows(t, [][]int64{{0, 1}, {2, 0}})
	b := MustFromRows(t, [][]int64{{0, 1}, {2, 0}})
	c := MustFromRows(t, [][]int64{{0, 1, 0}})

	require.Equal(t, 2, a.NNZ())
	require.Equal(t, 0, MustDense(t, 3, 3).NNZ())
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // shape differs
	require.False(t, a.Equal(nil))

	var nilDense *matrix.Dense
	require.True(t, nilDense.Equal(nil))
}

// TestDoEarlyStop verifies row-major order and early termination.
func TestDoEarlyStop(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, 2}, {3, 4}})

	var seen []int64
	m.Do(func(i, j int, v int64) bool {
		seen = append(seen, v)
		return len(seen) < 3 // stop after the third element
	})
	require.Equal(t, []int64{1, 2, 3}, seen)
}

// TestIdentityAndZerosLike covers the facade constructors.
func TestIdentityAndZerosLike(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3, id.NNZ())
	v, err := id.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	z, err := matrix.ZerosLike(id)
	require.NoError(t, err)
	require.Equal(t, 0, z.NNZ())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
