// SPDX-License-Identifier: MIT

// Package table: functional configuration for the ingestion surface.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.

package table

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single HTTP fetch when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 30 * time.Second

// Option mutates read options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	timeout time.Duration // DefaultTimeout
	client  *http.Client  // http.DefaultClient
}

// WithTimeout overrides the per-read timeout. A non-positive value disables
// the package-level bound and defers entirely to the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient supplies the client used for URL sources, e.g. one with a
// custom transport or test instrumentation.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		timeout: DefaultTimeout,
		client:  http.DefaultClient,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
