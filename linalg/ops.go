// SPDX-License-Identifier: MIT

// Package linalg: algebraic operation kernels (inv, mtimes, concat, tiling).
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches before the backend runs.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsci/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opInv     = "Inv"
	opMTimes  = "MTimes"
	opHorzCat = "HorzCat"
	opVertCat = "VertCat"
	opRepMat  = "RepMat"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf builds a two-operand dimension error naming both shapes.
func shapeErrorf(tag string, a, b *matrix.Dense) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
}

// Inv computes the inverse of a square matrix.
// Implementation:
//   - Stage 1: validate non-nil and square (distinct ErrNonSquare).
//   - Stage 2: backend inversion; the backend's condition signal decides
//     singularity - there is no exact zero-determinant comparison here.
//
// Behavior highlights:
//   - A singular or near-singular input returns ErrSingular with the
//     backend's condition diagnostics in the message.
//   - The operand is never mutated.
//
// Inputs:
//   - m: square matrix (n×n).
//
// Returns:
//   - *matrix.Dense: freshly allocated n×n inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNumericFailure.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A⁻¹·b, prefer solving the system upstream; forming
//     the inverse is the costlier and less stable route.
func Inv(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opInv, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opInv, m.Rows(), m.Cols(), ErrNonSquare)
	}

	var inv mat.Dense
	if err := inv.Inverse(toBackend(m)); err != nil {
		// gonum reports singular/near-singular input via a Condition error.
		return nil, fmt.Errorf("%s: %v: %w", opInv, err, ErrSingular)
	}

	return fromBackend(opInv, &inv)
}

// MTimes computes the matrix product A×B.
// Implementation:
//   - Stage 1: validate both operands non-nil and A.Cols == B.Rows
//     (ErrDimensionMismatch naming both shapes).
//   - Stage 2: backend multiplication into a fresh result.
//
// Inputs:
//   - a: left operand (r×n). b: right operand (n×c).
//
// Returns:
//   - *matrix.Dense: fresh r×c product.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, ErrNumericFailure.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MTimes(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMTimes, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMTimes, err)
	}
	if a.Cols() != b.Rows() {
		return nil, shapeErrorf(opMTimes, a, b)
	}

	var prod mat.Dense
	prod.Mul(toBackend(a), toBackend(b))

	return fromBackend(opMTimes, &prod)
}

// HorzCat concatenates two matrices side by side ([A B]).
// Requires equal row counts; produces a fresh r×(ca+cb) result without
// mutating either input.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch (row counts, both shapes
//     named).
//
// Complexity: O(r*(ca+cb)).
func HorzCat(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opHorzCat, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opErrorf(opHorzCat, err)
	}
	if a.Rows() != b.Rows() {
		return nil, shapeErrorf(opHorzCat, a, b)
	}

	var cat mat.Dense
	cat.Augment(toBackend(a), toBackend(b))

	return fromBackend(opHorzCat, &cat)
}

// VertCat concatenates two matrices top to bottom ([A; B]).
// Requires equal column counts; produces a fresh (ra+rb)×c result without
// mutating either input.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch (column counts, both
//     shapes named).
//
// Complexity: O((ra+rb)*c).
func VertCat(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opVertCat, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opErrorf(opVertCat, err)
	}
	if a.Cols() != b.Cols() {
		return nil, shapeErrorf(opVertCat, a, b)
	}

	var cat mat.Dense
	cat.Stack(toBackend(a), toBackend(b))

	return fromBackend(opVertCat, &cat)
}

// RepMat tiles m nx times along rows and ny times along columns.
// Implementation:
//   - Stage 1: validate m non-nil and nx, ny >= 1 (ErrDomain otherwise).
//   - Stage 2: row-wise block copies into a fresh (r*nx)×(c*ny) result in
//     fixed tile order; no backend involvement for a pure copy kernel.
//
// Inputs:
//   - m: source tile. nx, ny: positive tile counts.
//
// Returns:
//   - *matrix.Dense: fresh (r*nx)×(c*ny) tiling; every tile equals m.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDomain.
//
// Complexity:
//   - Time O(r*c*nx*ny), Space O(r*c*nx*ny).
func RepMat(m *matrix.Dense, nx, ny int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opRepMat, err)
	}
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%s: tile counts (%d,%d) must be positive: %w", opRepMat, nx, ny, ErrDomain)
	}

	r, c := m.Rows(), m.Cols()
	src := m.RawRowMajor()
	outCols := c * ny
	flat := make([]float64, r*nx*outCols)
	var bx, i, by int // tile-row, source-row, tile-col iterators
	for bx = 0; bx < nx; bx++ {
		for i = 0; i < r; i++ {
			srcRow := src[i*c : (i+1)*c]
			dstBase := (bx*r + i) * outCols
			for by = 0; by < ny; by++ {
				copy(flat[dstBase+by*c:dstBase+(by+1)*c], srcRow)
			}
		}
	}

	out, err := matrix.FromRows(r*nx, outCols, flat)
	if err != nil {
		return nil, opErrorf(opRepMat, err)
	}

	return out, nil
}
