// SPDX-License-Identifier: MIT
// Package stats: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is.

package stats

import "errors"

var (
	// ErrEmptyInput signals an extrema query over a zero-length sequence.
	// The minimum of nothing has no index; callers get an error, not -1.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrDimensionMismatch indicates paired samples of unequal length.
	ErrDimensionMismatch = errors.New("stats: sample length mismatch")

	// ErrInsufficientData signals fewer than two observations; a line
	// cannot be fit through fewer than two points.
	ErrInsufficientData = errors.New("stats: insufficient observations")

	// ErrRankDeficient is returned when the predictor has zero variance
	// (all x values identical), making the slope undefined. This is the
	// numeric-failure class of the regression surface.
	ErrRankDeficient = errors.New("stats: rank-deficient predictor")

	// ErrNaNInf rejects samples containing NaN or infinities before the
	// fit runs.
	ErrNaNInf = errors.New("stats: non-finite sample value")
)
