// SPDX-License-Identifier: MIT

// Package sci: functional configuration of the capability set.
// This file defines:
//   - Option / options (functional options with internal state),
//   - Without* group switches and cross-cutting knobs,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Disabling one group never affects another; the core group (argmin and
// the matrix builders) cannot be disabled.

package sci

import "time"

// Option mutates registry construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	linearAlgebra bool // inv, mtimes, horzcat, vertcat, repmat, svd, hessenberg, qr
	regression    bool // regress
	random        bool // rand
	io            bool // read_matrix
	constants     bool // pi, c, e, g, h, phi, G

	seeded      bool
	seed        int64         // used only when seeded
	readTimeout time.Duration // 0 means the table package default
}

// WithoutLinearAlgebra removes inv, mtimes, horzcat, vertcat, repmat, svd,
// hessenberg and qr from the registry.
func WithoutLinearAlgebra() Option {
	return func(o *options) { o.linearAlgebra = false }
}

// WithoutRegression removes regress from the registry.
func WithoutRegression() Option {
	return func(o *options) { o.regression = false }
}

// WithoutRandom removes rand from the registry.
func WithoutRandom() Option {
	return func(o *options) { o.random = false }
}

// WithoutIO removes read_matrix from the registry.
func WithoutIO() Option {
	return func(o *options) { o.io = false }
}

// WithoutConstants removes the physical-constant set.
func WithoutConstants() Option {
	return func(o *options) { o.constants = false }
}

// WithRandomSeed makes every rand call reproducible with the given seed.
func WithRandomSeed(seed int64) Option {
	return func(o *options) { o.seeded, o.seed = true, seed }
}

// WithReadTimeout bounds each read_matrix fetch.
func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = d }
}

// gatherOptions applies user setters on top of the everything-enabled
// default. Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		linearAlgebra: true,
		regression:    true,
		random:        true,
		io:            true,
		constants:     true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
