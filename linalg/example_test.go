// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsci/linalg"
	"github.com/katalvlaran/lvlsci/matrix"
)

// ExampleMTimes multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleMTimes() {
	a, _ := matrix.FromRows(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b, _ := matrix.FromRows(3, 2, []float64{7, 8, 9, 10, 11, 12})

	prod, err := linalg.MTimes(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(prod)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleHorzCat joins two row vectors into one.
func ExampleHorzCat() {
	a, _ := matrix.RowVector([]float64{1, 2})
	b, _ := matrix.RowVector([]float64{3, 4})

	cat, _ := linalg.HorzCat(a, b)
	fmt.Print(cat)
	// Output:
	// [1, 2, 3, 4]
}

// ExampleRepMat tiles a 1×2 matrix into a 2×4 grid.
func ExampleRepMat() {
	m, _ := matrix.RowVector([]float64{1, 2})

	tiled, _ := linalg.RepMat(m, 2, 2)
	fmt.Print(tiled)
	// Output:
	// [1, 2, 1, 2]
	// [1, 2, 1, 2]
}

// ExampleInv inverts a well-conditioned matrix and verifies the round trip.
func ExampleInv() {
	m, _ := matrix.FromRows(2, 2, []float64{4, 7, 2, 6})

	inv, err := linalg.Inv(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	back, _ := linalg.Inv(inv)
	fmt.Println("round trip:", matrix.EqualApprox(back, m, 1e-9))
	// Output:
	// round trip: true
}

// ExampleQR factors a matrix and checks the reconstruction.
func ExampleQR() {
	m, _ := matrix.FromRows(3, 3, []float64{12, -51, 4, 6, 167, -68, -4, 24, -41})

	res, err := linalg.QR(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	back, _ := linalg.MTimes(res.Q, res.R)
	fmt.Println("Q*R == A:", matrix.EqualApprox(back, m, 1e-8))
	// Output:
	// Q*R == A: true
}
