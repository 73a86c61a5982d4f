// SPDX-License-Identifier: MIT

// Package linalg: decomposition kernels (SVD, QR, Hessenberg).
//
// Purpose:
//   - Factor a matrix into named structural components returned as one
//     structured result, never as a bare scalar.
//
// Determinism & Policy:
//   - SVD delegates to the gonum backend (thin variant).
//   - QR and Hessenberg run a deterministic Householder kernel with fixed
//     k→i→j loop orders: gonum's QR is restricted to m >= n while the
//     operation surface accepts any shape, and the backend does not expose
//     a Hessenberg reduction at all.
//   - Backend/kernel breakdowns surface as ErrNumericFailure; they are
//     never approximated away.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opSVD        = "SVD"
	opQR         = "QR"
	opHessenberg = "Hessenberg"
)

// SVDResult carries the named factors of a singular value decomposition:
// m ≈ U·S·Vᵀ with U m×k, S k×k diagonal, V n×k, k = min(m,n).
type SVDResult struct {
	U *matrix.Dense // left singular vectors
	S *matrix.Dense // singular values on the diagonal, descending
	V *matrix.Dense // right singular vectors
}

// ToDynamic renders the result as an ordered {"u","s","v"} mapping for the
// dynamic boundary.
func (r *SVDResult) ToDynamic() dynamic.Value {
	return dynamic.FromNamed(
		dynamic.Entry{Key: "u", Value: r.U.ToDynamic()},
		dynamic.Entry{Key: "s", Value: r.S.ToDynamic()},
		dynamic.Entry{Key: "v", Value: r.V.ToDynamic()},
	)
}

// QRResult carries the named factors of a QR decomposition:
// m = Q·R with Q m×m orthogonal and R m×n upper triangular.
type QRResult struct {
	Q *matrix.Dense // orthogonal factor
	R *matrix.Dense // upper triangular factor
}

// ToDynamic renders the result as an ordered {"q","r"} mapping.
func (r *QRResult) ToDynamic() dynamic.Value {
	return dynamic.FromNamed(
		dynamic.Entry{Key: "q", Value: r.Q.ToDynamic()},
		dynamic.Entry{Key: "r", Value: r.R.ToDynamic()},
	)
}

// HessenbergResult carries the named factors of a Hessenberg reduction:
// m = P·H·Pᵀ with P orthogonal and H upper Hessenberg (zero below the
// first subdiagonal).
type HessenbergResult struct {
	P *matrix.Dense // accumulated orthogonal similarity factor
	H *matrix.Dense // upper Hessenberg form
}

// ToDynamic renders the result as an ordered {"p","h"} mapping.
func (r *HessenbergResult) ToDynamic() dynamic.Value {
	return dynamic.FromNamed(
		dynamic.Entry{Key: "p", Value: r.P.ToDynamic()},
		dynamic.Entry{Key: "h", Value: r.H.ToDynamic()},
	)
}

// SVD computes the thin singular value decomposition of any M×N matrix.
// Implementation:
//   - Stage 1: validate non-nil (shape degeneracy is impossible by the
//     Dense invariant rows, cols >= 1).
//   - Stage 2: backend factorization; a non-convergent factorization is
//     ErrNumericFailure.
//   - Stage 3: extract U and V, lay the singular values on a k×k diagonal.
//
// Returns:
//   - *SVDResult: {u, s, v} with U·S·Vᵀ ≈ m within floating tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNumericFailure.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m*n).
func SVD(m *matrix.Dense) (*SVDResult, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(toBackend(m), mat.SVDThin); !ok {
		return nil, fmt.Errorf("%s: factorization did not converge: %w", opSVD, ErrNumericFailure)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	uDense, err := fromBackend(opSVD, &u)
	if err != nil {
		return nil, err
	}
	vDense, err := fromBackend(opSVD, &v)
	if err != nil {
		return nil, err
	}

	// Lay the singular values on a k×k diagonal, descending order as
	// produced by the backend.
	k := len(values)
	diag := make([]float64, k*k)
	for i, s := range values {
		diag[i*k+i] = s
	}
	sDense, err := matrix.FromRows(k, k, diag)
	if err != nil {
		return nil, opErrorf(opSVD, err)
	}

	return &SVDResult{U: uDense, S: sDense, V: vDense}, nil
}

// QR computes a Householder QR factorization of any M×N matrix.
// Implementation:
//   - Stage 1: validate non-nil; copy A into R, init Q = I_m.
//   - Stage 2: for k = 0..min(m,n)-1 build a column reflector from
//     R[k:m, k], left-apply it to R and right-accumulate it into Q, so
//     A = Q·R holds at every step.
//   - Stage 3: zero the strict lower triangle of R (the reflections
//     annihilate it up to rounding noise; the contract is exact zeros).
//
// Behavior highlights:
//   - Fixed k→i→j visitation; stable, reproducible factors.
//   - Zero columns skip their reflector (no-op keeps determinism).
//
// Returns:
//   - *QRResult: {q, r} with Q orthogonal (m×m) and R upper triangular
//     (m×n).
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(m²·n), Space O(m²+m·n).
//
// AI-Hints:
//   - Unlike LAPACK-style thin factorizations this kernel accepts wide
//     matrices (m < n) as well; only hessenberg demands squareness.
func QR(m *matrix.Dense) (*QRResult, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opQR, err)
	}

	rows, cols := m.Rows(), m.Cols()
	r := m.RawRowMajor() // working copy, becomes R
	q := identityFlat(rows)
	v := make([]float64, rows) // Householder vector workspace

	steps := rows
	if cols < steps {
		steps = cols
	}
	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	for k = 0; k < steps; k++ {
		// Reflector from the k-th column below (and including) the pivot.
		norm = 0
		for i = k; i < rows; i++ {
			norm += r[i*cols+k] * r[i*cols+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to annihilate
		}
		alpha = -math.Copysign(norm, r[k*cols+k])
		for i = 0; i < rows; i++ {
			v[i] = 0
		}
		for i = k; i < rows; i++ {
			v[i] = r[i*cols+k]
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue // degenerate reflector, skip deterministically
		}
		tau = 2.0 / beta

		// Left-apply H_k to R: columns k..cols-1.
		for j = k; j < cols; j++ {
			sum = 0
			for i = k; i < rows; i++ {
				sum += v[i] * r[i*cols+j]
			}
			for i = k; i < rows; i++ {
				r[i*cols+j] -= tau * v[i] * sum
			}
		}

		// Right-accumulate H_k into Q: Q = Q·H_k.
		for i = 0; i < rows; i++ {
			sum = 0
			for j = k; j < rows; j++ {
				sum += q[i*rows+j] * v[j]
			}
			for j = k; j < rows; j++ {
				q[i*rows+j] -= tau * sum * v[j]
			}
		}
	}

	// The strict lower triangle is zero by construction; make it exact.
	for i = 1; i < rows; i++ {
		for j = 0; j < i && j < cols; j++ {
			r[i*cols+j] = 0
		}
	}

	qDense, err := matrix.FromRows(rows, rows, q)
	if err != nil {
		return nil, opErrorf(opQR, err)
	}
	rDense, err := matrix.FromRows(rows, cols, r)
	if err != nil {
		return nil, opErrorf(opQR, err)
	}

	return &QRResult{Q: qDense, R: rDense}, nil
}

// Hessenberg reduces a square matrix to upper Hessenberg form by Householder
// similarity transforms.
// Implementation:
//   - Stage 1: validate non-nil and square (distinct ErrNonSquare).
//   - Stage 2: for k = 0..n-3 build a reflector from H[k+1:n, k], apply it
//     from both sides (similarity), and right-accumulate it into P, so
//     A = P·H·Pᵀ holds at every step.
//   - Stage 3: zero everything below the first subdiagonal exactly.
//
// Behavior highlights:
//   - Symmetric input reduces to tridiagonal form as a special case.
//   - Fixed loop orders; reproducible factors.
//
// Returns:
//   - *HessenbergResult: {p, h} with P orthogonal and H upper Hessenberg.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Hessenberg(m *matrix.Dense) (*HessenbergResult, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opHessenberg, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opHessenberg, m.Rows(), m.Cols(), ErrNonSquare)
	}

	n := m.Rows()
	h := m.RawRowMajor() // working copy, becomes H
	p := identityFlat(n)
	v := make([]float64, n) // Householder vector workspace

	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	for k = 0; k+2 < n; k++ {
		// Reflector from the k-th column strictly below the subdiagonal
		// pivot H[k+1, k].
		norm = 0
		for i = k + 1; i < n; i++ {
			norm += h[i*n+k] * h[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // column already in Hessenberg shape
		}
		alpha = -math.Copysign(norm, h[(k+1)*n+k])
		for i = 0; i < n; i++ {
			v[i] = 0
		}
		for i = k + 1; i < n; i++ {
			v[i] = h[i*n+k]
		}
		v[k+1] -= alpha
		beta = 0
		for i = k + 1; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Left-apply H_k: rows k+1..n-1 across all columns.
		for j = 0; j < n; j++ {
			sum = 0
			for i = k + 1; i < n; i++ {
				sum += v[i] * h[i*n+j]
			}
			for i = k + 1; i < n; i++ {
				h[i*n+j] -= tau * v[i] * sum
			}
		}

		// Right-apply H_k: columns k+1..n-1 across all rows (similarity).
		for i = 0; i < n; i++ {
			sum = 0
			for j = k + 1; j < n; j++ {
				sum += h[i*n+j] * v[j]
			}
			for j = k + 1; j < n; j++ {
				h[i*n+j] -= tau * sum * v[j]
			}
		}

		// Accumulate the similarity factor: P = P·H_k.
		for i = 0; i < n; i++ {
			sum = 0
			for j = k + 1; j < n; j++ {
				sum += p[i*n+j] * v[j]
			}
			for j = k + 1; j < n; j++ {
				p[i*n+j] -= tau * sum * v[j]
			}
		}
	}

	// Entries below the first subdiagonal are zero by construction; make
	// them exact.
	for i = 2; i < n; i++ {
		for j = 0; j < i-1; j++ {
			h[i*n+j] = 0
		}
	}

	pDense, err := matrix.FromRows(n, n, p)
	if err != nil {
		return nil, opErrorf(opHessenberg, err)
	}
	hDense, err := matrix.FromRows(n, n, h)
	if err != nil {
		return nil, opErrorf(opHessenberg, err)
	}

	return &HessenbergResult{P: pDense, H: hDense}, nil
}

// identityFlat returns a flat row-major n×n identity buffer.
// Complexity: O(n^2).
func identityFlat(n int) []float64 {
	id := make([]float64, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1.0
	}

	return id
}
