// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcsr/matrix"
)

// errBadFlag marks malformed flag values.
var errBadFlag = errors.New("invalid flag value")

// inputDoc is the YAML document accepted by --input:
//
//	matrix:
//	  - [1, 0, 2]
//	  - [0, 3, 0]
//	  - [4, 0, 0]
//	vector: [1, 2, 3]
type inputDoc struct {
	Matrix [][]int64 `yaml:"matrix"`
	Vector []int64   `yaml:"vector"`
}

// demoGrid is the built-in 6×6 example matrix.
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

// demoVector is the built-in example vector.
func demoVector() []int64 { return []int64{1, 4, 2, 8, 5, 7} }

// loadInput reads and decodes an input document from path.
func loadInput(path string) (*matrix.Dense, []int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return decodeInput(bytes.NewReader(data))
}

// decodeInput decodes a YAML input document. Unknown keys are rejected and the
// matrix must be rectangular.
func decodeInput(r io.Reader) (*matrix.Dense, []int64, error) {
	var doc inputDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("parsing input: %w", err)
	}
	d, err := matrix.FromRows(doc.Matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("input matrix: %w", err)
	}

	return d, doc.Vector, nil
}

// parseShape parses "ROWS,COLS".
func parseShape(s string) (rows, cols int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("shape %q, want ROWS,COLS: %w", s, errBadFlag)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("shape %q: %w", s, errors.Join(errBadFlag, err))
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("shape %q: %w", s, errors.Join(errBadFlag, err))
	}

	return rows, cols, nil
}

// parseVector parses "a,b,c" into int64 values. The empty string is an
// empty vector.
func parseVector(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("vector element %d: %w", i, errors.Join(errBadFlag, err))
		}
		out[i] = v
	}

	return out, nil
}

// ones returns a vector of n ones.
func ones(n int) []int64 {
	x := make([]int64, n)
	for i := range x {
		x[i] = 1
	}

	return x
}
