// SPDX-License-Identifier: MIT

// Package stats: extrema queries over numeric sequences.
// Ties resolve to the earliest index; scans run in fixed left-to-right
// order so results are deterministic for any input.

package stats

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opArgMin = "ArgMin"
	opArgMax = "ArgMax"
	opMin    = "Min"
	opMax    = "Max"
)

// ArgMin returns the index of the smallest element of xs.
// The first occurrence wins on ties. An empty slice is ErrEmptyInput.
// Complexity: O(n).
func ArgMin(xs []float64) (int, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%s: %w", opArgMin, ErrEmptyInput)
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[best] {
			best = i
		}
	}

	return best, nil
}

// ArgMax returns the index of the largest element of xs.
// The first occurrence wins on ties. An empty slice is ErrEmptyInput.
// Complexity: O(n).
func ArgMax(xs []float64) (int, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%s: %w", opArgMax, ErrEmptyInput)
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}

	return best, nil
}

// Min returns the smallest element of xs, or ErrEmptyInput.
// Complexity: O(n).
func Min(xs []float64) (float64, error) {
	idx, err := ArgMin(xs)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMin, ErrEmptyInput)
	}

	return xs[idx], nil
}

// Max returns the largest element of xs, or ErrEmptyInput.
// Complexity: O(n).
func Max(xs []float64) (float64, error) {
	idx, err := ArgMax(xs)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMax, ErrEmptyInput)
	}

	return xs[idx], nil
}
