// SPDX-License-Identifier: MIT

// Package matrix: the conversion & validation layer.
//
// Purpose:
//   - Turn arbitrary dynamic input into a well-formed Dense in one strict
//     validation pass: rectangularity, element-type consistency, and the
//     finite-value policy are all enforced here, before any algebra runs.
//
// Determinism & Policy:
//   - A flat numeric sequence becomes a 1×N row vector.
//   - A sequence of sequences becomes rows, top to bottom.
//   - The first violation aborts the whole construction; no partial matrix
//     is ever returned.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlsci/dynamic"
)

const opFromDynamic = "FromDynamic"

// FromDynamic builds a Dense matrix from a dynamic value.
// Implementation:
//   - Stage 1: require a non-empty array (ErrEmptyInput otherwise; an empty
//     sequence has no defined shape, it is NOT a 0×0 matrix).
//   - Stage 2: classify the outer elements. All-sequence input is parsed
//     row by row with a fixed column count taken from row 0; all-scalar
//     input is parsed as one row vector. Mixing the two is ErrJagged.
//   - Stage 3: convert every element through dynamic.ToFloat; the first
//     conversion failure aborts with the (row, col) position attached.
//
// Behavior highlights:
//   - A jagged row fails with the offending row index and both lengths, so
//     the caller can diagnose without re-running.
//   - Finite-value policy applies (override with WithAllowNonFinite).
//
// Inputs:
//   - v: dynamic value; the only accepted variants are a flat numeric
//     array or an array of equal-length numeric arrays.
//
// Returns:
//   - *Dense: freshly allocated matrix owning its buffer.
//
// Errors:
//   - ErrBadShape (non-array input), ErrEmptyInput, ErrJagged,
//     dynamic.ErrConversion (wrapped, with position), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the single entry point from the dynamic world; operations in
//     linalg/stats assume its postconditions and skip re-validation of
//     element types.
func FromDynamic(v dynamic.Value, opts ...Option) (*Dense, error) {
	outer, ok := v.AsArray()
	if !ok {
		return nil, fmt.Errorf("%s: input kind %s: %w", opFromDynamic, v.Kind(), ErrBadShape)
	}
	if len(outer) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromDynamic, ErrEmptyInput)
	}

	// Classification: the first element decides the expected layout.
	if _, isSeq := outer[0].AsArray(); isSeq {
		return fromNestedRows(outer, opts...)
	}

	return fromFlatRow(outer, opts...)
}

// fromNestedRows parses a sequence-of-sequences as rows with a fixed column
// count. Row 0 defines cols; every later row must match exactly.
func fromNestedRows(outer []dynamic.Value, opts ...Option) (*Dense, error) {
	first, _ := outer[0].AsArray()
	rows, cols := len(outer), len(first)
	if cols == 0 {
		return nil, fmt.Errorf("%s: row 0: %w", opFromDynamic, ErrEmptyInput)
	}

	flat := make([]float64, 0, rows*cols)
	for i, rowVal := range outer { // fixed top-to-bottom row order
		row, isSeq := rowVal.AsArray()
		if !isSeq {
			// Scalar where a row was expected: rectangularity violation.
			return nil, fmt.Errorf("%s: row %d is a scalar amid sequences: %w", opFromDynamic, i, ErrJagged)
		}
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				opFromDynamic, i, len(row), cols, ErrJagged)
		}
		for j, elem := range row { // fixed left-to-right element order
			f, err := dynamic.ToFloat(elem)
			if err != nil {
				// First failure aborts the whole construction.
				return nil, fmt.Errorf("%s: element (%d,%d): %w", opFromDynamic, i, j, err)
			}
			flat = append(flat, f)
		}
	}

	return FromRows(rows, cols, flat, opts...)
}

// fromFlatRow parses a flat sequence of scalars as a 1×N row vector.
func fromFlatRow(outer []dynamic.Value, opts ...Option) (*Dense, error) {
	flat := make([]float64, 0, len(outer))
	for j, elem := range outer {
		if _, isSeq := elem.AsArray(); isSeq {
			// Sequence where a scalar was expected: mixed outer level.
			return nil, fmt.Errorf("%s: element %d is a sequence amid scalars: %w", opFromDynamic, j, ErrJagged)
		}
		f, err := dynamic.ToFloat(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: element (0,%d): %w", opFromDynamic, j, err)
		}
		flat = append(flat, f)
	}

	return FromRows(1, len(flat), flat, opts...)
}

// ToDynamic renders the matrix back into the dynamic representation the
// host expects: a 1×1 matrix collapses to a scalar float, a vector (either
// orientation) flattens to a single sequence, and everything else becomes a
// sequence of row sequences.
// Complexity: O(r*c).
func (m *Dense) ToDynamic() dynamic.Value {
	switch {
	case m.r == 1 && m.c == 1:
		return dynamic.Float(m.data[0])
	case m.IsVector():
		return dynamic.FromFloats(m.RawRowMajor())
	default:
		rows := make([][]float64, m.r)
		for i := 0; i < m.r; i++ {
			rows[i] = m.data[i*m.c : (i+1)*m.c]
		}

		return dynamic.FromRows(rows)
	}
}
