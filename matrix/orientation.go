// SPDX-License-Identifier: MIT

// Package matrix: orientation queries and conversions.
//
// Purpose:
//   - Expose the vector-orientation contract of the data model: a matrix is
//     a row vector iff rows == 1 and a column vector iff cols == 1, and the
//     only shape-changing conversions permitted outside Transpose are the
//     vector reorientations AsRow/AsColumn.
//
// Determinism & Policy:
//   - AsRow/AsColumn on a non-vector is ErrNotVector, never a silent
//     reshape; the general reshape simply does not exist in this model.
//   - Every conversion returns a fresh Dense; receivers are never mutated.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAsRow     = "AsRow"
	opAsColumn  = "AsColumn"
	opTranspose = "Transpose"
)

// IsRowVector reports whether m is 1×N. Complexity: O(1).
func (m *Dense) IsRowVector() bool { return m.r == 1 }

// IsColumnVector reports whether m is N×1. Complexity: O(1).
func (m *Dense) IsColumnVector() bool { return m.c == 1 }

// IsVector reports whether m is 1×N or N×1 (a 1×1 matrix is both).
// Complexity: O(1).
func (m *Dense) IsVector() bool { return m.r == 1 || m.c == 1 }

// AsRow returns the vector reoriented as 1×N.
// Implementation:
//   - Stage 1: validate the receiver is a vector (ErrNotVector otherwise).
//   - Stage 2: row vectors clone; column vectors re-lay the flat buffer.
//
// Returns a fresh Dense; the receiver is unchanged.
//
// Errors:
//   - ErrNotVector with the receiver shape in the message.
//
// Complexity: O(n).
func (m *Dense) AsRow() (*Dense, error) {
	if !m.IsVector() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opAsRow, m.r, m.c, ErrNotVector)
	}
	out := m.Clone()
	// A vector's flat buffer is orientation-independent; only dims change.
	out.r, out.c = 1, m.r*m.c

	return out, nil
}

// AsColumn returns the vector reoriented as N×1.
// Same contract as AsRow with the orientation flipped.
//
// Errors:
//   - ErrNotVector with the receiver shape in the message.
//
// Complexity: O(n).
func (m *Dense) AsColumn() (*Dense, error) {
	if !m.IsVector() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opAsColumn, m.r, m.c, ErrNotVector)
	}
	out := m.Clone()
	out.r, out.c = m.r*m.c, 1

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: allocate Dense(c, r) carrying the receiver's numeric policy.
//   - Stage 2: flat copy data[i*c+j] → out.data[j*r+i] in fixed i→j order.
//
// Behavior highlights:
//   - Always valid for any shape; a full materialization, not a view.
//
// Returns:
//   - *Dense: freshly allocated c×r transpose.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{
		r:              m.c,
		c:              m.r,
		data:           make([]float64, len(m.data)),
		validateFinite: m.validateFinite,
	}
	for i := 0; i < m.r; i++ { // fixed row-major traversal
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}
