// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package linalg

import "errors"

var (
	// ErrNonSquare signals that a square matrix was required (inv,
	// hessenberg) but the input was rectangular.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions for an
	// algebraic operation (mtimes inner dimensions, horzcat rows, vertcat
	// cols). The wrapping message names both shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrDomain indicates an invalid operation parameter, e.g. a
	// non-positive tile count passed to RepMat.
	ErrDomain = errors.New("linalg: parameter out of domain")

	// ErrSingular is returned when the backend reports a singular or
	// numerically near-singular matrix during inversion. Detection relies
	// on the backend's condition signal, not on a zero-determinant test.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNumericFailure marks every other backend-detected numeric
	// breakdown: non-convergent decomposition, non-finite results.
	// It is never downgraded to an approximate answer.
	ErrNumericFailure = errors.New("linalg: numeric backend failure")
)
