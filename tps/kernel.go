// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/katalvlaran/tpswarp/matrix"
)

// pairwiseDistances returns the a.Rows×b.Rows matrix of Euclidean distances
// between the rows of a and b, built from
// dist(i,j)² = ‖aᵢ‖² + ‖bⱼ‖² − 2·aᵢ·bⱼ.
//
// RowSumSquares and Mul accumulate identically, so rows that hold the same
// values get a distance of exactly 0. Rounding can push a squared distance
// of nearly coincident rows slightly below zero; those entries are clamped
// to 0 before the square root.
func pairwiseDistances(a, b *matrix.Dense) (*matrix.Dense, error) {
	aNorms, err := matrix.RowSumSquares(a)
	if err != nil {
		return nil, err
	}
	bNorms, err := matrix.RowSumSquares(b)
	if err != nil {
		return nil, err
	}
	m, n := len(aNorms), len(bNorms)

	aCol, err := matrix.NewDenseFromData(m, 1, aNorms)
	if err != nil {
		return nil, err
	}
	bRow, err := matrix.NewDenseFromData(1, n, bNorms)
	if err != nil {
		return nil, err
	}
	aExp, err := matrix.ExpandCols(aCol, n)
	if err != nil {
		return nil, err
	}
	bExp, err := matrix.ExpandRows(bRow, m)
	if err != nil {
		return nil, err
	}
	outer, err := matrix.Add(aExp, bExp)
	if err != nil {
		return nil, err
	}

	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, err
	}
	gram, err := matrix.Mul(a, bt)
	if err != nil {
		return nil, err
	}
	gram, err = matrix.Scale(gram, -2)
	if err != nil {
		return nil, err
	}

	sq, err := matrix.Add(outer, gram)
	if err != nil {
		return nil, err
	}
	sq, err = matrix.FillWhere(sq, sq, func(v float32) bool { return v < 0 }, 0)
	if err != nil {
		return nil, err
	}

	return matrix.Sqrt(sq)
}

// radialKernel applies φ(r) = r²·ln r elementwise. With resolve set, entries
// where r == 0 take the limit value 0; otherwise they evaluate to NaN.
func radialKernel(dist *matrix.Dense, resolve bool) (*matrix.Dense, error) {
	sq, err := matrix.Hadamard(dist, dist)
	if err != nil {
		return nil, err
	}
	lg, err := matrix.Log(dist)
	if err != nil {
		return nil, err
	}
	phi, err := matrix.Hadamard(sq, lg)
	if err != nil {
		return nil, err
	}
	if !resolve {
		return phi, nil
	}

	return matrix.FillWhere(phi, dist, func(r float32) bool { return r == 0 }, 0)
}

// kernelMatrix builds the m×m fit kernel over the normalized control points
// with the diagonal replaced by diag.
func kernelMatrix(rn *matrix.Dense, diag float32) (*matrix.Dense, error) {
	dist, err := pairwiseDistances(rn, rn)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	phi, err := radialKernel(dist, true)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	return matrix.FillDiagonal(phi, diag)
}
