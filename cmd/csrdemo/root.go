// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcsr/builder"
	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/matrix"
	"github.com/katalvlaran/lvcsr/spy"
)

// errReported is returned after a diagnostic has already been written to stderr.
var errReported = errors.New("reported")

// =============================================================================
// COMMAND FLAGS
// =============================================================================

type rootFlags struct {
	input   string
	random  string
	density float64
	seed    int64
	vector  string
	alloc   string
	checked bool
	spyPath string
	verbose bool
}

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "csrdemo",
		Short: "Build a CSR matrix and multiply it by a vector",
		Long: `Convert a dense integer matrix into Compressed Sparse Row form, print the
row offsets, column indices and values, then print the product with a vector.

Input (first match wins):
  --input FILE        YAML document {matrix: [[...]], vector: [...]}
  --random ROWS,COLS  seeded random sparse matrix (see --density, --seed)
  (none)              built-in 6×6 example with vector 1,4,2,8,5,7

Examples:
  csrdemo
  csrdemo --vector 1,1,1,1,1,1 --checked
  csrdemo --random 100,100 --density 0.05 --seed 7 --spy pattern.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "f", "", "YAML input file with matrix and vector")
	fl.StringVar(&f.random, "random", "", "generate a random ROWS,COLS matrix")
	fl.Float64Var(&f.density, "density", 0.1, "non-zero probability for --random")
	fl.Int64Var(&f.seed, "seed", 1, "RNG seed for --random")
	fl.StringVar(&f.vector, "vector", "", "comma-separated vector (overrides the input vector)")
	fl.StringVar(&f.alloc, "alloc", csr.DefaultAllocPolicy.String(), "allocation policy: worst-case, two-pass or grow")
	fl.BoolVar(&f.checked, "checked", false, "fail on int64 overflow instead of wrapping")
	fl.StringVar(&f.spyPath, "spy", "", "write the sparsity pattern to FILE (.png or .svg)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.MarkFlagsMutuallyExclusive("input", "random")

	return cmd
}

// =============================================================================
// EXECUTION
// =============================================================================

func run(stdout, stderr io.Writer, f rootFlags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	policy, err := csr.ParseAllocPolicy(f.alloc)
	if err != nil {
		return err
	}

	d, x, err := loadMatrix(f)
	if err != nil {
		return err
	}
	rows, cols := d.Shape()
	logger.Debug("input loaded", slog.Int("rows", rows), slog.Int("cols", cols), slog.Int("vector_len", len(x)))

	opts := []csr.Option{csr.WithAllocPolicy(policy)}
	if f.checked {
		opts = append(opts, csr.WithOverflowCheck())
	}
	m, err := csr.FromDense(d, opts...)
	if err != nil {
		return err
	}
	defer m.Release()
	logger.Debug("csr built",
		slog.Int("nnz", m.NNZ()),
		slog.String("alloc", policy.String()),
		slog.Bool("checked", m.OverflowChecked()))

	fmt.Fprintln(stdout, "Row offsets:", csr.FormatIndices(m.RowOffsets()))
	fmt.Fprintln(stdout, "Column indices:", csr.FormatIndices(m.ColIndices()))
	fmt.Fprintln(stdout, "Values:", csr.FormatVector(m.Values()))

	if f.spyPath != "" {
		if err = writeSpy(f.spyPath, m); err != nil {
			return err
		}
		logger.Info("spy plot written", slog.String("path", f.spyPath))
	}

	y, err := csr.Multiply(m, x)
	switch {
	case errors.Is(err, csr.ErrDimensionMismatch):
		fmt.Fprintln(stderr, "Invalid matrix multiply:", err)
		return errReported
	case err != nil:
		return err
	}
	fmt.Fprintln(stdout, "Answer:", csr.FormatVector(y))

	return nil
}

// loadMatrix resolves the dense input and the vector from flags.
func loadMatrix(f rootFlags) (*matrix.Dense, []int64, error) {
	var (
		d   *matrix.Dense
		x   []int64
		err error
	)
	switch {
	case f.input != "":
		if d, x, err = loadInput(f.input); err != nil {
			return nil, nil, err
		}
	case f.random != "":
		rows, cols, err := parseShape(f.random)
		if err != nil {
			return nil, nil, err
		}
		if d, err = builder.RandomSparse(rows, cols, f.density, builder.WithSeed(f.seed)); err != nil {
			return nil, nil, err
		}
		x = ones(rows)
	default:
		if d, err = matrix.FromRows(demoGrid()); err != nil {
			return nil, nil, err
		}
		x = demoVector()
	}

	if f.vector != "" {
		if x, err = parseVector(f.vector); err != nil {
			return nil, nil, err
		}
	}

	return d, x, nil
}

// writeSpy renders the sparsity pattern of m to path.
func writeSpy(path string, m *csr.Matrix) (err error) {
	format, err := spy.FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return spy.Write(out, m, spy.WithFormat(format), spy.WithTitle(path))
}
