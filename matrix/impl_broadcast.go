// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast kernels (ExpandRows, ExpandCols) used to build an outer sum
//     without nested loops at the call site.
//   - Row reductions (RowSumSquares) and column appends (AppendColumn) used by
//     the pairwise-distance identity and the affine design matrix.

package matrix

import "fmt"

const (
	opExpandRows    = "ExpandRows"
	opExpandCols    = "ExpandCols"
	opRowSumSquares = "RowSumSquares"
	opAppendColumn  = "AppendColumn"
)

// ExpandRows repeats a single-row matrix n times, producing n×k.
// Every output row is an exact copy of the source row.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m has != 1 rows;
//     ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(n*k), Space O(n*k).
func ExpandRows(m *Dense, n int) (*Dense, error) {
	if err := ValidateSingleRow(m); err != nil {
		return nil, matrixErrorf(opExpandRows, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opExpandRows, ErrInvalidDimensions)
	}
	k := m.c
	out := newDenseUnchecked(n, k)
	for i := 0; i < n; i++ {
		copy(out.data[i*k:(i+1)*k], m.data)
	}

	return out, nil
}

// ExpandCols repeats a single-column matrix n times, producing k×n.
// Every output column is an exact copy of the source column.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m has != 1 columns;
//     ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(k*n), Space O(k*n).
func ExpandCols(m *Dense, n int) (*Dense, error) {
	if err := ValidateSingleCol(m); err != nil {
		return nil, matrixErrorf(opExpandCols, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opExpandCols, ErrInvalidDimensions)
	}
	k := m.r
	out := newDenseUnchecked(k, n)
	for i := 0; i < k; i++ {
		v := m.data[i]
		base := i * n
		for j := 0; j < n; j++ {
			out.data[base+j] = v
		}
	}

	return out, nil
}

// RowSumSquares returns, for every row, the sum of squares of its elements
// (its squared Euclidean norm). The sum accumulates in float64 with the same
// k-ascending order Mul uses, so ‖x‖² and x·xᵀ agree bit for bit.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSumSquares(m *Dense) ([]float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSumSquares, err)
	}
	out := make([]float32, m.r)
	var sum, v float64
	for i := 0; i < m.r; i++ {
		sum = ZeroSum
		base := i * m.c
		for j := 0; j < m.c; j++ {
			v = float64(m.data[base+j])
			sum += v * v
		}
		out[i] = float32(sum)
	}

	return out, nil
}

// AppendColumn returns [m | v·1], an r×(c+1) matrix whose last column is v.
// Used to build the [x y 1] design matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)).
func AppendColumn(m *Dense, v float32) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendColumn, fmt.Errorf("source: %w", err))
	}
	rows, cols := m.r, m.c+1
	out := newDenseUnchecked(rows, cols)
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:i*cols+m.c], m.data[i*m.c:(i+1)*m.c])
		out.data[i*cols+m.c] = v
	}

	return out, nil
}
