// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All constructors and builders MUST return these sentinels
// and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the boundary so callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or a backing slice whose length differs from
	// rows*cols). Constructors validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrEmptyInput is returned by FromDynamic and the vector constructors
	// for an empty sequence: an empty input has an undefined shape and is
	// never interpreted as a 0x0 matrix.
	ErrEmptyInput = errors.New("matrix: empty input has undefined shape")

	// ErrJagged is returned by FromDynamic when inner sequences differ in
	// length, or when scalar and sequence elements are mixed at the outer
	// level. The wrapping message names the offending row and both lengths.
	ErrJagged = errors.New("matrix: jagged rows")

	// ErrNotVector is returned by AsRow/AsColumn when the receiver is
	// neither 1xN nor Nx1. Orientation conversion is not a reshape.
	ErrNotVector = errors.New("matrix: not a vector")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// used where a constructed matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or +-Inf value where finite values are
	// required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
