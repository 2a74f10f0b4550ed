// SPDX-License-Identifier: MIT

package spy

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png canvas
	_ "gonum.org/v1/plot/vg/vgsvg" // svg canvas

	"github.com/katalvlaran/lvcsr/csr"
)

// markerRadius is the half side of an entry marker.
const markerRadius = vg.Length(1.5)

// Plot builds a scatter plot of the stored positions of m.
//
// Implementation:
//   - Stage 1: reject nil and released structures.
//   - Stage 2: collect (c, rows-1-r) for every stored entry via m.Do.
//   - Stage 3: fix both axes to the matrix extent so empty rows and columns
//     still occupy space.
//
// Errors: ErrNilMatrix, csr.ErrReleased (wrapped).
// Complexity: O(nnz).
func Plot(m *csr.Matrix, opts ...Option) (*plot.Plot, error) {
	if m == nil {
		return nil, spyErrorf(opPlot, ErrNilMatrix)
	}
	if m.Released() {
		return nil, spyErrorf(opPlot, csr.ErrReleased)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Shape()

	pts := make(plotter.XYs, 0, m.NNZ())
	m.Do(func(r, c int, _ int64) bool {
		pts = append(pts, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
		return true
	})

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = fmt.Sprintf("column (nnz=%d)", m.NNZ())
	p.Y.Label.Text = "row"

	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, spyErrorf(opPlot, err)
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Color = color.Black
		s.GlyphStyle.Radius = markerRadius
		p.Add(s)
	}

	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

	return p, nil
}

// Write renders the spy plot of m to w.
// Errors: those of Plot, ErrUnsupportedFormat, and rendering/IO failures.
func Write(w io.Writer, m *csr.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if o.format != FormatPNG && o.format != FormatSVG {
		return spyErrorf(opWrite, fmt.Errorf("%q: %w", o.format, ErrUnsupportedFormat))
	}
	p, err := Plot(m, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.size, o.size, o.format)
	if err != nil {
		return spyErrorf(opWrite, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return spyErrorf(opWrite, err)
	}

	return nil
}
