// SPDX-License-Identifier: MIT

package csr

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtSep      = ", "
	_fmtLineEnd  = "\n"
	_fmtReleased = "csr(released)\n"
)

// String renders the three arrays as comma-separated lines:
// row offsets, column indices, values.
func (m *Matrix) String() string {
	if m.released {
		return _fmtReleased
	}
	var b strings.Builder
	b.WriteString(formatList(m.rowOffsets))
	b.WriteString(_fmtLineEnd)
	b.WriteString(formatList(m.colIndices))
	b.WriteString(_fmtLineEnd)
	b.WriteString(formatList(m.values))
	b.WriteString(_fmtLineEnd)

	return b.String()
}

// FormatVector renders a dense vector as "a, b, c" (empty string for no elements).
func FormatVector(v []int64) string { return formatList(v) }

// FormatIndices renders an index slice (offsets, columns) as "a, b, c".
func FormatIndices(v []int) string { return formatList(v) }

func formatList[T int | int64](xs []T) string {
	var b strings.Builder
	for k, x := range xs {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatInt(int64(x), 10))
	}

	return b.String()
}
