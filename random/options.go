// SPDX-License-Identifier: MIT

// Package random: functional configuration for draw specifications.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.

package random

import "math/rand"

// Draw defaults - single source of truth for zero-option behavior.
const (
	// DefaultRows and DefaultCols describe the scalar draw shape.
	DefaultRows = 1
	DefaultCols = 1

	// DefaultMin and DefaultMax bound the half-open default range [0, 1).
	DefaultMin = 0.0
	DefaultMax = 1.0
)

// Option mutates draw options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rows, cols int
	min, max   float64
	src        rand.Source // nil means the shared unseeded stream
}

// WithShape sets the result shape to rows×cols. Validation happens at draw
// time so option construction never fails.
func WithShape(rows, cols int) Option {
	return func(o *options) { o.rows, o.cols = rows, cols }
}

// WithRange sets the half-open draw range [min, max).
func WithRange(min, max float64) Option {
	return func(o *options) { o.min, o.max = min, max }
}

// WithSeed makes the draw reproducible: a fixed seed yields an identical
// stream on every call.
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = rand.NewSource(seed) }
}

// WithSource supplies a caller-owned source, e.g. for injecting a
// deterministic stub in tests. Overrides WithSeed when applied later.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		rows: DefaultRows,
		cols: DefaultCols,
		min:  DefaultMin,
		max:  DefaultMax,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
