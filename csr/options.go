// SPDX-License-Identifier: MIT

// Package csr: functional configuration for construction and the numeric policy.
// This file defines:
//   - AllocPolicy (how working storage is sized during the scan),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Capacity planning never changes the produced arrays, only peak memory.
package csr

import (
	"fmt"
	"strings"
)

// AllocPolicy selects how column-index and value storage is sized while the
// dense grid is scanned.
type AllocPolicy int

const (
	// AllocWorstCase sizes working storage to rows*cols (the fully dense bound),
	// then trims to the exact nnz once the scan completes. One pass over the
	// grid; transient over-allocation bounded by the dense size.
	AllocWorstCase AllocPolicy = iota

	// AllocTwoPass counts non-zeros first and allocates exactly once.
	// Two passes over the grid; no over-allocation.
	AllocTwoPass

	// AllocGrow appends into amortized-growth slices. One pass; no explicit trim,
	// spare capacity is bounded by the growth factor.
	AllocGrow
)

// Canonical policy names, accepted by ParseAllocPolicy.
const (
	allocNameWorstCase = "worst-case"
	allocNameTwoPass   = "two-pass"
	allocNameGrow      = "grow"
)

// String returns the canonical policy name.
func (p AllocPolicy) String() string {
	switch p {
	case AllocWorstCase:
		return allocNameWorstCase
	case AllocTwoPass:
		return allocNameTwoPass
	case AllocGrow:
		return allocNameGrow
	default:
		return fmt.Sprintf("AllocPolicy(%d)", int(p))
	}
}

// valid reports whether p is one of the declared policies.
func (p AllocPolicy) valid() bool {
	return p == AllocWorstCase || p == AllocTwoPass || p == AllocGrow
}

// ParseAllocPolicy maps a canonical name (case-insensitive) to an AllocPolicy.
// Errors: ErrUnknownPolicy.
func ParseAllocPolicy(name string) (AllocPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case allocNameWorstCase:
		return AllocWorstCase, nil
	case allocNameTwoPass:
		return AllocTwoPass, nil
	case allocNameGrow:
		return AllocGrow, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAllocPolicy keeps the single-pass worst-case-then-trim strategy.
	DefaultAllocPolicy = AllocWorstCase

	// DefaultOverflowCheck leaves Multiply on plain int64 arithmetic, which wraps
	// on overflow (two's complement).
	DefaultOverflowCheck = false
)

const panicAllocPolicyInvalid = "csr: WithAllocPolicy: unknown policy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	alloc         AllocPolicy // DefaultAllocPolicy
	checkOverflow bool        // DefaultOverflowCheck
}

// WithAllocPolicy selects the storage sizing strategy used by Build/FromDense.
// Panics on a value outside the declared AllocPolicy constants.
// Complexity: O(1).
func WithAllocPolicy(p AllocPolicy) Option {
	if !p.valid() {
		panic(panicAllocPolicyInvalid)
	}

	return func(o *Options) { o.alloc = p }
}

// WithOverflowCheck makes Multiply on the built structure detect int64
// overflow of every product and partial sum and fail with ErrOverflow.
//
// Notes:
//   - The policy is stored per structure, like a numeric guard, so every
//     multiplication with that structure honors it.
//   - Costs a few extra comparisons per stored entry.
func WithOverflowCheck() Option {
	return func(o *Options) { o.checkOverflow = true }
}

// WithNoOverflowCheck restores the default wraparound arithmetic.
func WithNoOverflowCheck() Option {
	return func(o *Options) { o.checkOverflow = false }
}

// gatherOptions resolves user options on top of the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		alloc:         DefaultAllocPolicy,
		checkOverflow: DefaultOverflowCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
