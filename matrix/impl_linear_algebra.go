// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the spline
// fitter: element-wise addition, subtraction and product, matrix
// multiplication, transpose, scalar scaling and inversion. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Products accumulate in float64 and round once into the float32 result.

package matrix

import "fmt"

// ZeroSum is the initial sum value for products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opHadamard  = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float32, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseUnchecked(a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := newDenseUnchecked(a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop over row-major strides; the dot product for
//     C[i,j] accumulates in float64 and is rounded to float32 once.
//
// Behavior highlights:
//   - Deterministic summation order (k ascending) for every cell.
//   - An inner dimension of zero is legal and yields a zero matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := newDenseUnchecked(aRows, bCols)

	var (
		i, j, k    int
		rowOffsetA int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += float64(a.data[rowOffsetA+k]) * float64(b.data[k*bCols+j])
			}
			res.data[i*bCols+j] = float32(sum)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; Transpose(Transpose(m)) equals m
// element for element because values are only moved, never recomputed.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDenseUnchecked(cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float32) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDenseUnchecked(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Inverse computes A⁻¹ by solving A·X = I with the pivoted LU solver.
// Only exactly zero pivots count as singular. It is InverseTol(m, 0).
func Inverse(m *Dense) (*Dense, error) {
	return InverseTol(m, 0)
}

// InverseTol computes A⁻¹, rejecting pivots with |pivot| <= tol·max|A|.
// Implementation:
//   - Stage 1: ValidateSquare(m); build I_n.
//   - Stage 2: X = SolveTol(m, I_n, tol).
//
// Behavior highlights:
//   - Singular input yields (nil, ErrSingular): there is no partial or
//     garbage result to misuse.
//   - The input is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidTolerance, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func InverseTol(m *Dense, tol float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	id, err := NewIdentity(m.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := SolveTol(m, id, tol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
