// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a, b).
// Use for Add/Sub/Hadamard.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows and both inputs are non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSolveCompatible ensures a is square and b has a.Rows rows.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ValidateSolveCompatible(a, b *Dense) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSolveCompatible",
			fmt.Errorf("A is %dx%d, B has %d rows: %w", a.r, a.c, b.r, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSingleRow ensures m is non-nil with exactly one row (broadcast source).
func ValidateSingleRow(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != 1 {
		return validatorErrorf("ValidateSingleRow", fmt.Errorf("rows=%d: %w", m.r, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSingleCol ensures m is non-nil with exactly one column (broadcast source).
func ValidateSingleCol(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.c != 1 {
		return validatorErrorf("ValidateSingleCol", fmt.Errorf("cols=%d: %w", m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateTolerance ensures a pivot tolerance is finite and non-negative.
func ValidateTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateTolerance", fmt.Errorf("tol=%g: %w", tol, ErrInvalidTolerance))
	}

	return nil
}
