// SPDX-License-Identifier: MIT

package spy

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Defaults.
const (
	DefaultSize   = 4 * vg.Inch
	DefaultFormat = FormatPNG
	DefaultTitle  = ""
)

// Options holds the rendering configuration.
type Options struct {
	title  string
	size   vg.Length
	format string
}

// Option mutates Options.
type Option func(*Options)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSize sets the side length of the square canvas. Panics if size <= 0.
func WithSize(size vg.Length) Option {
	if size <= 0 {
		panic("spy: WithSize(size<=0)")
	}

	return func(o *Options) { o.size = size }
}

// WithFormat selects the output format ("png" or "svg", case-insensitive).
// The name is checked by Write.
func WithFormat(format string) Option {
	return func(o *Options) { o.format = strings.ToLower(format) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{title: DefaultTitle, size: DefaultSize, format: DefaultFormat}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// FormatFromPath derives the output format from a file extension.
// Errors: ErrUnsupportedFormat.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatPNG, FormatSVG:
		return ext, nil
	default:
		return "", spyErrorf(opFormat, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat))
	}
}
