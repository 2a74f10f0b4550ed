// SPDX-License-Identifier: MIT
package spy_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvcsr/builder"
	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/spy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diag(t *testing.T, n int) *csr.Matrix {
	t.Helper()
	d, err := builder.Diagonal(n)
	require.NoError(t, err)
	m, err := csr.FromDense(d)
	require.NoError(t, err)

	return m
}

// TestPlot_AxesAndTitle checks the plot extent follows the matrix shape.
func TestPlot_AxesAndTitle(t *testing.T) {
	m := diag(t, 5)

	p, err := spy.Plot(m, spy.WithTitle("diag"))
	require.NoError(t, err)
	assert.Equal(t, "diag", p.Title.Text)
	assert.Equal(t, -0.5, p.X.Min)
	assert.Equal(t, 4.5, p.X.Max)
	assert.Equal(t, -0.5, p.Y.Min)
	assert.Equal(t, 4.5, p.Y.Max)
	assert.Contains(t, p.X.Label.Text, "nnz=5")
}

// TestWrite_Formats renders PNG and SVG and checks their signatures.
func TestWrite_Formats(t *testing.T) {
	m := diag(t, 8)

	var png bytes.Buffer
	require.NoError(t, spy.Write(&png, m))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	var svg bytes.Buffer
	require.NoError(t, spy.Write(&svg, m, spy.WithFormat("SVG"), spy.WithSize(200)))
	assert.Contains(t, svg.String(), "<svg")
}

// TestWrite_EmptyMatrix renders an all-zero structure without markers.
func TestWrite_EmptyMatrix(t *testing.T) {
	m, err := csr.Build(2, 3, [][]int64{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, spy.Write(&buf, m))
	assert.NotZero(t, buf.Len())
}

// TestErrors covers nil, released and format failures.
func TestErrors(t *testing.T) {
	_, err := spy.Plot(nil)
	assert.ErrorIs(t, err, spy.ErrNilMatrix)

	m := diag(t, 2)
	var buf bytes.Buffer
	err = spy.Write(&buf, m, spy.WithFormat("gif"))
	assert.ErrorIs(t, err, spy.ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())

	m.Release()
	_, err = spy.Plot(m)
	assert.ErrorIs(t, err, csr.ErrReleased)

	assert.Panics(t, func() { spy.WithSize(0) })
}

// TestFormatFromPath maps extensions to formats.
func TestFormatFromPath(t *testing.T) {
	f, err := spy.FormatFromPath("out/pattern.PNG")
	require.NoError(t, err)
	assert.Equal(t, spy.FormatPNG, f)

	f, err = spy.FormatFromPath("pattern.svg")
	require.NoError(t, err)
	assert.Equal(t, spy.FormatSVG, f)

	_, err = spy.FormatFromPath("pattern.pdf")
	assert.ErrorIs(t, err, spy.ErrUnsupportedFormat)
}
