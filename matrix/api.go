// SPDX-License-Identifier: MIT
// Package matrix - public constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common shapes.
//   - Avoid logic duplication - each facade delegates to NewDense.
//
// AI-Hints:
//   - These back the host-facing zeros/ones/eye builders; shape errors are
//     the same ErrBadShape sentinel as NewDense.

package matrix

// NewZeros returns a new zero-initialized rows×cols Dense.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols Dense with every element set to 1.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data { // flat deterministic fill
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: neutral element for inversion/orthogonalization checks.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		m.data[i*n+i] = 1.0
	}

	return m, nil
}
