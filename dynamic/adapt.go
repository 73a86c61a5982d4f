// SPDX-License-Identifier: MIT

// Package dynamic: result adapters (typed → dynamic direction).
//
// Purpose:
//   - Render typed numeric results back into the dynamic representation the
//     host consumes: flat sequences for vectors, nested sequences for 2-D
//     data, ordered maps for multi-part results.
//
// Determinism & Policy:
//   - Adapters are pure; input slices are copied, never aliased.
//   - Shape decisions (scalar vs vector vs matrix) belong to the producer
//     (see matrix.Dense.ToDynamic); these helpers only materialize.
package dynamic

// FromFloats renders a numeric slice as a flat Array of Float values.
// The input slice is read once and not retained.
// Complexity: O(n).
func FromFloats(xs []float64) Value {
	elems := make([]Value, len(xs))
	for i, x := range xs { // fixed order preserves element positions
		elems[i] = Float(x)
	}

	return Value{kind: KindArray, arr: elems}
}

// FromRows renders a rectangular [][]float64 as an Array of row Arrays.
// Rectangularity is the caller's contract (producers hold it by
// construction); rows are materialized in order.
// Complexity: O(r*c).
func FromRows(rows [][]float64) Value {
	outer := make([]Value, len(rows))
	for i, row := range rows { // row-major order, same as Dense storage
		outer[i] = FromFloats(row)
	}

	return Value{kind: KindArray, arr: outer}
}

// FromNamed renders an ordered set of named results (decomposition factors,
// regression statistics) as a Map Value, preserving entry order so hosts
// can display components deterministically.
// Complexity: O(k).
func FromNamed(entries ...Entry) Value {
	return Map(entries...)
}
