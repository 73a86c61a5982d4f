// SPDX-License-Identifier: MIT

// Package linalg: bridge between the Matrix model and the gonum backend.
//
// Purpose:
//   - Keep all backend coupling in one file. Operations convert operands
//     in, run the backend, and convert results out; nothing else in the
//     module imports gonum.
//
// Determinism & Policy:
//   - Conversions copy; the backend never aliases a Dense buffer.
//   - A backend result containing NaN/Inf is a numeric failure, not data.
package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsci/matrix"
)

// toBackend copies a Dense into a gonum mat.Dense.
// Complexity: O(r*c).
func toBackend(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawRowMajor())
}

// fromBackend copies a gonum result into a fresh Dense.
// Stage 1: read the backend shape.
// Stage 2: flat row-major copy with a finite-value scan.
// A non-finite element means the backend broke down numerically; surface
// ErrNumericFailure with the flat position rather than storing poison.
// Complexity: O(r*c).
func fromBackend(tag string, d mat.Matrix) (*matrix.Dense, error) {
	r, c := d.Dims()
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ { // fixed row-major order
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: non-finite result at (%d,%d): %w", tag, i, j, ErrNumericFailure)
			}
			flat = append(flat, v)
		}
	}
	out, err := matrix.FromRows(r, c, flat)
	if err != nil {
		// Shape came from the backend itself; failure here is a programmer
		// error surfaced as a numeric failure rather than a panic.
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return out, nil
}
