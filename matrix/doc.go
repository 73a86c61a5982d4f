// SPDX-License-Identifier: MIT

// Package matrix provides the typed 2-D numeric container at the heart of
// lvlsci and the conversion layer that builds it from dynamic input.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of float64 with explicit shape
//     (rows >= 1, cols >= 1) backed by a single flat buffer.
//   - Vector constructors (RowVector, ColumnVector) plus orientation
//     queries and conversions (IsRowVector, AsColumn, AsRow) that error on
//     non-vectors instead of silently reshaping.
//   - FromDynamic, the validation pass that turns heterogeneous dynamic
//     sequences into a Dense, rejecting jagged, empty, and non-numeric
//     input with precise positions.
//   - Tolerance-based equality (EqualApprox) because exact float comparison
//     is brittle for derived results.
//
// Matrices are value containers: every operation that "changes" a matrix
// returns a fresh one. A Dense is never shared mutable state; concurrent
// callers must each own their instances.
package matrix
