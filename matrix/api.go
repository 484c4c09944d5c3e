// SPDX-License-Identifier: MIT
// Package matrix: public constructors.
//
// Purpose:
//   - Provide intention-revealing constructors (zeros, identity, flat data, rows).
//   - Validate every shape contract at construction so kernels can trust their inputs.

package matrix

import "fmt"

// Constructor tags for error wrapping.
const (
	opFromData = "NewDenseFromData"
	opFromRows = "NewDenseFromRows"
	opIdentity = "NewIdentity"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewDenseFromData builds a rows×cols matrix from a flat row-major slice.
// Implementation:
//   - Stage 1: validate dimensions and len(data) == rows*cols.
//   - Stage 2: copy data into a fresh buffer (the caller keeps ownership of data).
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions.
//   - ErrDimensionMismatch when the buffer length disagrees with the shape.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDenseFromData(rows, cols int, data []float32) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opFromData, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromData,
			fmt.Errorf("len(data)=%d, want %d×%d: %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	m := newDenseUnchecked(rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewDenseFromRows builds a matrix from nested row slices.
// All rows must share one length; an empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged (wrapped with the offending row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float32) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return newDenseUnchecked(0, 0), nil
	}
	c := len(rows[0])
	m := newDenseUnchecked(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}
