// SPDX-License-Identifier: MIT

package csr

import "fmt"

// Validate checks every CSR invariant and reports the first violation as
// ErrCorrupt with its position.
//
// Checks, in order:
//   - len(rowOffsets) == rows+1 and rowOffsets[0] == 0;
//   - offsets non-decreasing;
//   - len(colIndices) == len(values) == rowOffsets[rows];
//   - per row: 0 <= col < cols, strictly increasing columns, no stored zeros.
//
// Errors: ErrReleased, ErrCorrupt.
// Complexity: O(rows + nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return csrErrorf(opValidate, ErrNilMatrix)
	}
	if m.released {
		return csrErrorf(opValidate, ErrReleased)
	}
	corrupt := func(format string, args ...any) error {
		return csrErrorf(opValidate, fmt.Errorf(format+": %w", append(args, ErrCorrupt)...))
	}

	if len(m.rowOffsets) != m.rows+1 {
		return corrupt("len(rowOffsets)=%d, want %d", len(m.rowOffsets), m.rows+1)
	}
	if m.rowOffsets[0] != 0 {
		return corrupt("rowOffsets[0]=%d", m.rowOffsets[0])
	}
	for r := 0; r < m.rows; r++ {
		if m.rowOffsets[r+1] < m.rowOffsets[r] {
			return corrupt("rowOffsets decrease at row %d", r)
		}
	}
	nnz := m.rowOffsets[m.rows]
	if len(m.colIndices) != nnz || len(m.values) != nnz {
		return corrupt("len(colIndices)=%d len(values)=%d, want %d", len(m.colIndices), len(m.values), nnz)
	}

	var r, i, c int
	for r = 0; r < m.rows; r++ {
		for i = m.rowOffsets[r]; i < m.rowOffsets[r+1]; i++ {
			c = m.colIndices[i]
			if c < 0 || c >= m.cols {
				return corrupt("row %d: column %d outside [0,%d)", r, c, m.cols)
			}
			if i > m.rowOffsets[r] && c <= m.colIndices[i-1] {
				return corrupt("row %d: column %d not after %d", r, c, m.colIndices[i-1])
			}
			if m.values[i] == 0 {
				return corrupt("row %d: stored zero at column %d", r, c)
			}
		}
	}

	return nil
}
