// SPDX-License-Identifier: MIT

// Command csrdemo builds a CSR structure from a dense matrix, prints its three
// arrays and multiplies it by a vector.
//
// Without flags it runs the built-in 6×6 example:
//
//	$ csrdemo
//	Row offsets: 0, 2, 6, 8, 10, 11, 14
//	Column indices: 0, 4, 1, 2, 4, 5, 3, 5, 0, 3, 4, 3, 4, 5
//	Values: 3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7
//	Answer: 8, 106, 58, 29, 25, 158
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
