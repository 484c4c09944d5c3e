// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise transforms (Apply, Log, Sqrt) and the small
//     patching kernels the spline pipeline needs (FillDiagonal, FillWhere).
//
// Design:
//   - Every transform writes into a freshly allocated Dense. The input is
//     never an alias of the output, so a matrix still held by a Spline cannot
//     be corrupted by a later transform.
//   - Log and Sqrt are not special-cased: log(0) = -Inf, log(x<0) = NaN,
//     sqrt(x<0) = NaN. Callers patch singular entries explicitly.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over the row-major buffer; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opApply        = "Apply"
	opLog          = "Log"
	opSqrt         = "Sqrt"
	opFillDiagonal = "FillDiagonal"
	opFillWhere    = "FillWhere"
)

// Apply returns a new matrix with out[i,j] = fn(m[i,j]).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Apply(m *Dense, fn func(float32) float32) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	out := newDenseUnchecked(m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = fn(v)
	}

	return out, nil
}

// Log returns the element-wise natural logarithm of m as a new matrix.
// Non-positive entries produce -Inf (zero) or NaN (negative).
func Log(m *Dense) (*Dense, error) {
	out, err := Apply(m, func(v float32) float32 { return float32(math.Log(float64(v))) })
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	return out, nil
}

// Sqrt returns the element-wise square root of m as a new matrix.
// Negative entries produce NaN.
func Sqrt(m *Dense) (*Dense, error) {
	out, err := Apply(m, func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}

	return out, nil
}

// FillDiagonal returns a copy of the square matrix m whose main diagonal is v.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2) copy + O(n) writes.
func FillDiagonal(m *Dense, v float32) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFillDiagonal, err)
	}
	out := m.Clone()
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i] = v
	}

	return out, nil
}

// FillWhere returns a copy of m where every cell whose counterpart in mask
// satisfies pred is replaced by v. mask and m must share a shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FillWhere(m, mask *Dense, pred func(float32) bool, v float32) (*Dense, error) {
	if err := ValidateBinarySameShape(m, mask); err != nil {
		return nil, matrixErrorf(opFillWhere, fmt.Errorf("mask: %w", err))
	}
	out := m.Clone()
	for idx, mv := range mask.data {
		if pred(mv) {
			out.data[idx] = v
		}
	}

	return out, nil
}
