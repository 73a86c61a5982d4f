// SPDX-License-Identifier: MIT

// Package matrix: tolerance-based equality.
// Exact float64 comparison is brittle for derived results (decompositions,
// inversions), so equality in this model is always element-wise within an
// explicit tolerance.
package matrix

import "math"

// EqualApprox reports whether a and b have identical shape and every
// element pair differs by at most tol (absolute).
// A negative tol is flipped to its absolute value; nil operands are equal
// only to each other.
// Complexity: O(r*c), first mismatch short-circuits.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	if tol < 0 {
		tol = -tol
	}
	for idx := range a.data { // flat deterministic scan
		if math.Abs(a.data[idx]-b.data[idx]) > tol {
			return false
		}
	}

	return true
}

// Equal is EqualApprox with the documented DefaultEpsilon tolerance.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool { return EqualApprox(a, b, DefaultEpsilon) }
