// SPDX-License-Identifier: MIT

package builder

// Method names used to prefix errors with the constructor that produced them.
const (
	MethodBuildDense   = "BuildDense"
	MethodFull         = "Full"
	MethodDiagonal     = "Diagonal"
	MethodBanded       = "Banded"
	MethodRandomSparse = "RandomSparse"
)

// MinDim is the smallest allowed dimension (rows, cols or n).
const MinDim = 1

// Probability bounds accepted by RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultValue is written to filled cells when no RNG is configured, and
// replaces a zero returned by any ValueFn.
const DefaultValue int64 = 1

// Range of DefaultValueFn draws.
const (
	defaultValueMin int64 = 1
	defaultValueMax int64 = 9
)
