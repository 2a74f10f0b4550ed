// SPDX-License-Identifier: MIT

// Package spy renders the sparsity pattern of a csr.Matrix ("spy plot"):
// every stored entry becomes a square marker at its (column, row) position,
// with row 0 drawn at the top as in printed matrices.
//
// Plot returns a *plot.Plot for further customization; Write renders it
// straight to an io.Writer in PNG or SVG.
//
//	m, _ := csr.Build(rows, cols, grid)
//	f, _ := os.Create("pattern.png")
//	defer f.Close()
//	if err := spy.Write(f, m, spy.WithTitle("A")); err != nil { ... }
package spy
