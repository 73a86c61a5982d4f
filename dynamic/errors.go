// SPDX-License-Identifier: MIT
// Package dynamic: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// dynamic package. All conversions MUST return these sentinels and tests
// MUST check them via errors.Is. No conversion panics on user input.

package dynamic

import "errors"

var (
	// ErrConversion is returned when a Value variant cannot be coerced into
	// the requested target type (e.g., a string where a number is required).
	// The wrapping message names the offending kind and, where available,
	// the position inside a sequence.
	ErrConversion = errors.New("dynamic: unsupported conversion")

	// ErrNotInteger is returned by ToInt when a floating-point Value carries
	// a fractional part and therefore has no exact integer representation.
	// It wraps no precision loss silently.
	ErrNotInteger = errors.New("dynamic: float has no exact integer value")
)
