// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks shared by this package and the operation packages built on it.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tags.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//   - Centralizing validators eliminates inconsistent guard logic across
//     files; operation packages call these before invoking any backend so
//     shape problems fail fast with package sentinels, never as backend
//     panics.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure). Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrBadShape)
	}

	return nil
}

// ValidateSameRows ensures a and b have equal row counts (horzcat guard).
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameRows(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateSameRows: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrBadShape)
	}

	return nil
}

// ValidateSameCols ensures a and b have equal column counts (vertcat guard).
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameCols(a, b *Dense) error {
	if a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameCols: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrBadShape)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, naming both shapes.
// Assumes both are non-nil. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrBadShape)
	}

	return nil
}

// ValidateVector ensures m is 1×N or N×1.
// Assumes m is non-nil. Complexity: O(1).
func ValidateVector(m *Dense) error {
	if !m.IsVector() {
		return validatorErrorf(fmt.Sprintf("ValidateVector: %dx%d", m.r, m.c), ErrNotVector)
	}

	return nil
}
