// SPDX-License-Identifier: MIT

// Package tps: functional configuration for Fit.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper that resolves the effective configuration.
//
// Options travel with the fitted spline so WithAddedPoint refits under the
// same policy.
package tps

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDiagonal replaces φ(0) on the diagonal of the fit kernel matrix.
	DefaultDiagonal = 1e-6

	// DefaultRegularization is the ridge term added on top of the diagonal.
	// Zero keeps the fit an exact interpolation.
	DefaultRegularization = 0.0

	// DefaultRawQueryKernel keeps ln(0) unresolved for queries that coincide
	// with a control point when true.
	DefaultRawQueryKernel = false
)

// ---------- Internal panic messages ----------

const (
	panicDiagonalInvalid       = "tps: WithDiagonal: value must be finite"
	panicRegularizationInvalid = "tps: WithRegularization: lambda must be finite, non-negative"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective fit configuration. Fields are unexported; build it
// with Option setters.
type Options struct {
	diagonal       float32 // DefaultDiagonal
	regularization float32 // DefaultRegularization
	rawQueryKernel bool    // DefaultRawQueryKernel
}

// WithDiagonal sets the value written over the kernel matrix diagonal.
//
// Panics when v is NaN or ±Inf.
func WithDiagonal(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicDiagonalInvalid)
	}

	return func(o *Options) { o.diagonal = float32(v) }
}

// WithRegularization adds lambda to every diagonal entry of the kernel matrix
// in addition to the diagonal constant. The spline then smooths instead of
// interpolating; larger lambda bends less. It also turns kernel matrices that
// would be singular into solvable ones.
//
// Panics when lambda is negative or not finite.
func WithRegularization(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		panic(panicRegularizationInvalid)
	}

	return func(o *Options) { o.regularization = float32(lambda) }
}

// WithRawQueryKernel makes Warp evaluate r²·ln r literally, so a query that
// coincides with a control point produces NaN. This matches shader-side
// implementations of the same formula.
func WithRawQueryKernel() Option {
	return func(o *Options) { o.rawQueryKernel = true }
}

// defaultOptions returns Options populated with the Default* constants.
func defaultOptions() Options {
	return Options{
		diagonal:       DefaultDiagonal,
		regularization: DefaultRegularization,
		rawQueryKernel: DefaultRawQueryKernel,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
