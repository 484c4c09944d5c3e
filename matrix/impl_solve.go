// SPDX-License-Identifier: MIT
// Package matrix: general square solver.
//
// Purpose:
//   - Solve A·X = B for a general (non-symmetric) square A and a multi-column B.
//   - Detect singular systems and report them as ErrSingular instead of
//     returning ill-defined output.
//
// Design:
//   - Doolittle factorization P·A = L·U with partial (row) pivoting, computed in
//     a float64 workspace. L has an implicit unit diagonal and shares the packed
//     buffer with U.
//   - A pivot that is not finite, or whose magnitude is at most tol·max|A|,
//     marks the matrix singular. tol = 0 (LUFactor, Solve) flags only exact
//     zeros, mirroring LAPACK ?getrf; callers whose inputs carry float32
//     rounding pass a relative tol through LUFactorTol or SolveTol.

package matrix

import (
	"fmt"
	"math"
)

const (
	opLU    = "LU"
	opSolve = "Solve"
)

// LU holds a packed pivoted factorization of a square matrix.
// The zero value is not usable; obtain one from LUFactor.
type LU struct {
	n   int       // order of the factored matrix
	lu  []float64 // row-major packed factors: strict lower = L, upper incl. diag = U
	piv []int     // piv[i] = original row placed at position i
}

// LUFactor computes P·A = L·U with partial pivoting and rejects only pivots
// that are exactly zero or not finite. It is LUFactorTol(a, 0).
func LUFactor(a *Dense) (*LU, error) {
	return LUFactorTol(a, 0)
}

// LUFactorTol computes P·A = L·U with partial pivoting, treating any pivot
// with |pivot| <= tol·max|a[i,j]| as zero.
// Implementation:
//   - Stage 1: ValidateSquare(a), ValidateTolerance(tol); copy A into a
//     float64 workspace and record max|a[i,j]|.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (i ≥ k),
//     swap it into place, reject small or non-finite pivots, eliminate below.
//
// Behavior highlights:
//   - Deterministic: ties keep the lowest row index.
//   - The input is never mutated.
//   - The threshold is relative, so scaling A does not change the verdict.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidTolerance,
//     ErrSingular (wrapped with the failing column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUFactorTol(a *Dense, tol float64) (*LU, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := a.r
	lu := make([]float64, n*n)
	var scale float64
	for idx, v := range a.data {
		lu[idx] = float64(v)
		scale = math.Max(scale, math.Abs(lu[idx]))
	}
	limit := tol * scale
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var (
		i, j, k, p int
		maxAbs     float64
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		pivot = lu[k*n+k]
		if math.IsNaN(pivot) || math.IsInf(pivot, 0) || math.Abs(pivot) <= limit {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}

		// Eliminate rows below k; store multipliers in the strict lower part.
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: lu, piv: piv}, nil
}

// Order returns the dimension n of the factored n×n matrix.
func (f *LU) Order() int { return f.n }

// Solve returns X with A·X = B for the factored A.
// Implementation:
//   - Stage 1: validate B has n rows.
//   - Stage 2: for every column of B: permute, forward-substitute with unit L,
//     back-substitute with U; round into the float32 result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^2 * cols(B)), Space O(n) scratch + O(n*cols(B)) result.
func (f *LU) Solve(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != f.n {
		return nil, matrixErrorf(opSolve,
			fmt.Errorf("factor order %d, B has %d rows: %w", f.n, b.r, ErrDimensionMismatch))
	}

	n, nrhs := f.n, b.c
	x := newDenseUnchecked(n, nrhs)
	y := make([]float64, n) // per-column workspace

	var (
		col, i, k int
		sum       float64
	)
	for col = 0; col < nrhs; col++ {
		// Forward substitution: L·y = P·b.
		for i = 0; i < n; i++ {
			sum = float64(b.data[f.piv[i]*nrhs+col])
			for k = 0; k < i; k++ {
				sum -= f.lu[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Backward substitution: U·x = y (in place over y).
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= f.lu[i*n+k] * y[k]
			}
			y[i] = sum / f.lu[i*n+i]
		}
		for i = 0; i < n; i++ {
			x.data[i*nrhs+col] = float32(y[i])
		}
	}

	return x, nil
}

// Solve solves A·X = B for square A and returns X with the shape of B.
// Only exactly zero pivots count as singular; see SolveTol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3 + n^2 * cols(B)), Space O(n^2).
func Solve(a, b *Dense) (*Dense, error) {
	return SolveTol(a, b, 0)
}

// SolveTol is Solve with the relative pivot threshold of LUFactorTol.
func SolveTol(a, b *Dense, tol float64) (*Dense, error) {
	if err := ValidateSolveCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LUFactorTol(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
