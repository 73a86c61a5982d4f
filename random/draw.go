// SPDX-License-Identifier: MIT

// Package random: draw kernels for scalars and matrices.

package random

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlsci/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opScalar = "Scalar"
	opMatrix = "Matrix"
)

// validateRange rejects inverted, empty and non-finite ranges.
func validateRange(tag string, min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return fmt.Errorf("%s: non-finite range bound [%g, %g): %w", tag, min, max, ErrDomain)
	}
	if min >= max {
		return fmt.Errorf("%s: empty range [%g, %g): %w", tag, min, max, ErrDomain)
	}

	return nil
}

// float64In draws one value uniformly from [min, max).
func float64In(rng *rand.Rand, min, max float64) float64 {
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64() // shared unseeded stream
	}

	return min + u*(max-min)
}

// Scalar draws a single uniform value.
// Defaults to [0, 1); WithRange adjusts the bounds, WithSeed/WithSource fix
// the stream. Shape options are ignored here.
//
// Errors: ErrDomain on an invalid range.
// Complexity: O(1).
func Scalar(opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := validateRange(opScalar, o.min, o.max); err != nil {
		return 0, err
	}

	var rng *rand.Rand
	if o.src != nil {
		rng = rand.New(o.src)
	}

	return float64In(rng, o.min, o.max), nil
}

// Matrix draws a rows×cols matrix of uniform values.
// Implementation:
//   - Stage 1: resolve options, validate shape (positive dims) and range.
//   - Stage 2: fill a flat row-major buffer in fixed order from a single
//     stream, so a seeded draw is fully reproducible.
//   - Stage 3: wrap the buffer as a Dense (values are finite by
//     construction).
//
// Returns:
//   - *matrix.Dense of the requested shape with every element in
//     [min, max).
//
// Errors:
//   - ErrDomain for non-positive dimensions or an invalid range.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Matrix(opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if o.rows < 1 || o.cols < 1 {
		return nil, fmt.Errorf("%s: shape %dx%d: %w", opMatrix, o.rows, o.cols, ErrDomain)
	}
	if err := validateRange(opMatrix, o.min, o.max); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if o.src != nil {
		rng = rand.New(o.src)
	}

	flat := make([]float64, o.rows*o.cols)
	for i := range flat { // fixed order keeps seeded draws reproducible
		flat[i] = float64In(rng, o.min, o.max)
	}

	out, err := matrix.FromRows(o.rows, o.cols, flat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMatrix, err)
	}

	return out, nil
}
