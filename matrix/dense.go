// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major matrix container.
// Elements live in a single flat slice (arena-style) for cache friendliness
// and so that shape is explicit state, never inferred from nesting.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Invariants: r >= 1, c >= 1, len(data) == r*c; elements are finite unless
// the matrix was built with WithAllowNonFinite.
type Dense struct {
	r, c           int       // number of rows and columns
	data           []float64 // flat backing storage, length == r*c
	validateFinite bool      // numeric policy captured at construction
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols >= 1.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateFinite: o.validateFinite,
	}, nil
}

// FromRows creates an r×c Dense from a row-major backing slice.
// Stage 1 (Validate): shape positive and len(data) == rows*cols.
// Stage 2 (Validate): finite-element policy over every entry.
// Stage 3 (Finalize): copy data into a fresh buffer (no aliasing).
//
// Errors:
//   - ErrBadShape for non-positive dims or a length mismatch.
//   - ErrNaNInf (with the flat index) under the default finite policy.
//
// Complexity: O(r*c).
func FromRows(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("FromRows(%d,%d) with %d elements: %w", rows, cols, len(data), ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.validateFinite {
		for idx, v := range data { // fixed order, first violation wins
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: element %d: %w", idx, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, validateFinite: o.validateFinite}, nil
}

// RowVector creates a 1×N Dense from the given elements.
// An empty slice is ErrEmptyInput: a vector of undefined length is not a
// matrix. Complexity: O(n).
func RowVector(data []float64, opts ...Option) (*Dense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("RowVector: %w", ErrEmptyInput)
	}

	return FromRows(1, len(data), data, opts...)
}

// ColumnVector creates an N×1 Dense from the given elements.
// An empty slice is ErrEmptyInput. Complexity: O(n).
func ColumnVector(data []float64, opts ...Option) (*Dense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ColumnVector: %w", ErrEmptyInput)
	}

	return FromRows(len(data), 1, data, opts...)
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Under the default numeric policy a NaN or +-Inf value is rejected with
// ErrNaNInf before the write. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validateFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateFinite: m.validateFinite}
}

// RawRowMajor returns a fresh row-major copy of the backing buffer.
// The copy keeps callers (numeric backends included) from aliasing internal
// state. Complexity: O(r*c).
func (m *Dense) RawRowMajor() []float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return buf
}

// Row returns a fresh copy of row i.
// Returns ErrOutOfRange on an invalid index. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	row := make([]float64, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j := 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
