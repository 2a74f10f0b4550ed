// SPDX-License-Identifier: MIT
// Package csr_test contains test helpers
//
// Purpose:
//   • Provide the reference 6×6 scenario and small builders shared by tests.

package csr_test

import (
	"testing"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/matrix"
)

// demoGrid is the 6×6 reference matrix.
func demoGrid() [][]int64 {
	return [][]int64{
		{3, 0, 0, 0, 1, 0},
		{0, 4, 1, 0, 5, 9},
		{0, 0, 0, 2, 0, 6},
		{5, 0, 0, 3, 0, 0},
		{0, 0, 0, 0, 5, 0},
		{0, 0, 0, 8, 9, 7},
	}
}

// demoVector is the reference input vector for demoGrid.
var demoVector = []int64{1, 4, 2, 8, 5, 7}

// Expected CSR arrays and product for demoGrid × demoVector.
var (
	demoOffsets = []int{0, 2, 6, 8, 10, 11, 14}
	demoColumns = []int{0, 4, 1, 2, 4, 5, 3, 5, 0, 3, 4, 3, 4, 5}
	demoValues  = []int64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7}
	demoResult  = []int64{8, 106, 58, 29, 25, 158}
)

// allPolicies lists every allocation policy for table-driven tests.
var allPolicies = []csr.AllocPolicy{csr.AllocWorstCase, csr.AllocTwoPass, csr.AllocGrow}

// hide masks *matrix.Dense so FromDense takes its At-based fallback.
type hide struct{ matrix.Matrix }

// MustBuild builds grid or fails the test.
func MustBuild(t testing.TB, grid [][]int64, opts ...csr.Option) *csr.Matrix {
	t.Helper()
	m, err := csr.Build(len(grid), len(grid[0]), grid, opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return m
}

// MustDense converts grid to *matrix.Dense or fails the test.
func MustDense(t testing.TB, grid [][]int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(grid)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return d
}
