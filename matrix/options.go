// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction-time numeric
// policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public constructors
//     consume ...Option.
package matrix

// Numeric policy defaults - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the tolerance used by Equal (the convenience form
	// of EqualApprox). Chosen for double-precision derived results.
	DefaultEpsilon = 1e-9

	// DefaultValidateFinite toggles strict finite-value validation on
	// ingestion and Set. Every element is a finite float unless explicitly
	// permitted otherwise.
	DefaultValidateFinite = true
)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	validateFinite bool // DefaultValidateFinite
}

// WithAllowNonFinite permits NaN and +-Inf elements in the constructed
// matrix. This is the "explicitly permitted otherwise" escape hatch; data
// built this way flows through the algebra kernels unchecked.
//
// Returns: Option (functional setter). Complexity: O(1).
//
// AI-Hints:
//   - Only use when ingesting placeholder-laden external data; sanitize
//     before handing matrices to decomposition routines.
func WithAllowNonFinite() Option {
	return func(o *options) { o.validateFinite = false }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		validateFinite: DefaultValidateFinite,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
