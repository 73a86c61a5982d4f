// SPDX-License-Identifier: MIT

// Package stats: ordinary-least-squares regression on paired samples.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/matrix"
)

const opRegress = "Regress"

// Regression is the result of a simple OLS fit y ≈ Intercept + Slope·x.
type Regression struct {
	Slope     float64 // fitted slope (beta)
	Intercept float64 // fitted intercept (alpha)
	RSquared  float64 // coefficient of determination in [0, 1]
}

// Coefficients returns the fit as a 2×1 column vector [intercept; slope],
// the layout expected by matrix consumers of the fit.
func (r *Regression) Coefficients() (*matrix.Dense, error) {
	return matrix.ColumnVector([]float64{r.Intercept, r.Slope})
}

// ToDynamic renders the fit as an ordered mapping for the dynamic boundary:
// {"coefficients": [intercept, slope], "intercept", "slope", "rsquared"}.
func (r *Regression) ToDynamic() dynamic.Value {
	return dynamic.FromNamed(
		dynamic.Entry{Key: "coefficients", Value: dynamic.FromFloats([]float64{r.Intercept, r.Slope})},
		dynamic.Entry{Key: "intercept", Value: dynamic.Float(r.Intercept)},
		dynamic.Entry{Key: "slope", Value: dynamic.Float(r.Slope)},
		dynamic.Entry{Key: "rsquared", Value: dynamic.Float(r.RSquared)},
	)
}

// Regress fits y ≈ a + b·x by ordinary least squares.
// Implementation:
//   - Stage 1: validate paired lengths, n >= 2, finite samples.
//   - Stage 2: reject a zero-variance predictor (all x identical) as
//     ErrRankDeficient; the slope is undefined and the backend would
//     silently emit NaN.
//   - Stage 3: delegate to the gonum stat backend for the unweighted fit
//     and the coefficient of determination.
//
// Inputs:
//   - x: predictor samples. y: response samples, len(y) == len(x).
//
// Returns:
//   - *Regression with Slope, Intercept and RSquared populated.
//
// Errors:
//   - ErrDimensionMismatch, ErrInsufficientData, ErrNaNInf,
//     ErrRankDeficient.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - A perfect fit (all residuals zero) yields RSquared == 1; a constant
//     response yields RSquared == 0 rather than a division blowup.
func Regress(x, y []float64) (*Regression, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%s: len(x)=%d vs len(y)=%d: %w", opRegress, len(x), len(y), ErrDimensionMismatch)
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%s: %d observations, need at least 2: %w", opRegress, len(x), ErrInsufficientData)
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, fmt.Errorf("%s: observation %d: %w", opRegress, i, ErrNaNInf)
		}
	}

	// All-identical x values leave the slope undefined.
	constant := true
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			constant = false
			break
		}
	}
	if constant {
		return nil, fmt.Errorf("%s: predictor has zero variance: %w", opRegress, ErrRankDeficient)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)
	if math.IsNaN(r2) {
		// Constant response: the fit explains nothing rather than failing.
		r2 = 0
	}

	return &Regression{Slope: beta, Intercept: alpha, RSquared: r2}, nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
