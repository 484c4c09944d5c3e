// SPDX-License-Identifier: MIT

package tps

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates parallel coordinate slices of different length.
	ErrLengthMismatch = errors.New("tps: coordinate slices differ in length")

	// ErrZeroSpan indicates that all coordinates share one value on an axis,
	// so that axis cannot be scaled into the unit square.
	ErrZeroSpan = errors.New("tps: zero span on axis")

	// ErrNoCoordinates indicates a normalization request over an empty set.
	ErrNoCoordinates = errors.New("tps: no coordinates")

	// ErrUnknownFormat is returned by DecodePairs for JSON that is neither a
	// pair array nor an object holding a "pairs" list.
	ErrUnknownFormat = errors.New("tps: unrecognized pairs document")
)

// Fit stages reported by FitError.
const (
	StageNormalize = "normalize"
	StageAffine    = "affine"
	StageKernel    = "kernel"
)

// FitError reports a failed fit together with the stage that failed and the
// number of unique control points involved.
type FitError struct {
	Stage string
	M     int
	Err   error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("tps: fit failed at %s stage (m=%d): %v", e.Stage, e.M, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }
