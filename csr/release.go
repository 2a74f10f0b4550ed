// SPDX-License-Identifier: MIT

package csr

// Release drops the row offsets, column indices and values together and
// marks the structure released.
//
// Behavior highlights:
//   - Idempotent; a nil receiver is a no-op.
//   - Afterwards Rows/Cols/NNZ report 0, copy accessors return nil, and every
//     error-returning method (Multiply, At, RowNNZ, ToDense, Validate) fails
//     with ErrReleased.
//   - Touches only this structure; other matrices never share its arrays.
//
// Complexity: O(1).
func (m *Matrix) Release() {
	if m == nil || m.released {
		return
	}
	m.rowOffsets, m.colIndices, m.values = nil, nil, nil
	m.rows, m.cols = 0, 0
	m.released = true
}

// Released reports whether Release has been called. A nil Matrix counts as released.
func (m *Matrix) Released() bool { return m == nil || m.released }
