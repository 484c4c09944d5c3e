// Package matrix is the small dense linear-algebra core behind the thin-plate
// spline engine in package tps.
//
// The matrix package provides:
//
//   - Dense: a row-major float32 buffer with bounds-checked At/Set, deep Clone
//     and zero-sized shapes (0×k, k×0).
//   - Element-wise kernels: Add, Sub, Hadamard, Scale, Log, Sqrt, Apply.
//   - Products and shape kernels: Mul, Transpose, ExpandRows, ExpandCols,
//     RowSumSquares, AppendColumn, FillDiagonal, FillWhere.
//   - A general square solver (LUFactor, Solve) using Doolittle factorization
//     with partial pivoting, and Inverse built on top of it. The Tol variants
//     (LUFactorTol, SolveTol, InverseTol) treat pivots within a relative
//     threshold of the largest entry as zero.
//
// Every kernel returns a fresh matrix and leaves its operands untouched.
// Failures surface as sentinel errors (ErrDimensionMismatch, ErrOutOfRange,
// ErrSingular, ...) wrapped with the operation name; match them with errors.Is.
//
// This is not a general-purpose library: it implements exactly the operations
// the spline fitter and evaluator need, with deterministic loop orders so that
// two fits over the same input produce bit-identical coefficients.
package matrix
