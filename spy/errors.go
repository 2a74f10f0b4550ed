// SPDX-License-Identifier: MIT

package spy

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned for a nil *csr.Matrix.
	ErrNilMatrix = errors.New("spy: nil matrix")

	// ErrUnsupportedFormat is returned for an output format other than png or svg.
	ErrUnsupportedFormat = errors.New("spy: unsupported format")
)

const (
	opPlot   = "Plot"
	opWrite  = "Write"
	opFormat = "FormatFromPath"
)

// spyErrorf wraps err with an operation tag.
func spyErrorf(op string, err error) error {
	return fmt.Errorf("spy.%s: %w", op, err)
}
