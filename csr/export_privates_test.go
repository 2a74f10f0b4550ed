// SPDX-License-Identifier: MIT

package csr

// Test-Bridge (White-Box)
//
// Purpose:
//   - Let csr_test build deliberately broken structures for Validate and
//     inspect spare capacity left by each allocation policy, without widening
//     the production API.

// CorruptForTest hands the live arrays of m to f, which may rewrite them.
func CorruptForTest(m *Matrix, f func(rowOffsets, colIndices []int, values []int64) ([]int, []int, []int64)) {
	m.rowOffsets, m.colIndices, m.values = f(m.rowOffsets, m.colIndices, m.values)
}

// CapacityForTest returns cap(colIndices) and cap(values).
func CapacityForTest(m *Matrix) (int, int) { return cap(m.colIndices), cap(m.values) }

// MulInt64ForTest exposes the checked multiply helper.
var MulInt64ForTest = mulInt64

// AddInt64ForTest exposes the checked add helper.
var AddInt64ForTest = addInt64
