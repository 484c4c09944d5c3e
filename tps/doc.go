// SPDX-License-Identifier: MIT

// Package tps fits and evaluates thin-plate splines between two planar
// coordinate systems.
//
// A spline is fitted from control pairs that each link a "real" coordinate
// (for example longitude/latitude) to a "map" coordinate (for example a pixel
// in a photographed trail map). Once fitted, Warp carries any real coordinate
// into the map system.
//
// Fitting pipeline:
//
//  1. Dedup: pairs are keyed by their real coordinate; the first one wins.
//  2. Fewer than three unique pairs produce a degenerate spline whose warp
//     is the zero coordinate. This is not an error.
//  3. Both systems are normalized into the unit square per axis.
//  4. The affine part D (3×2) is the least-squares solution of [x y 1]·D = Mn.
//  5. The radial part c (2×m) solves Φ·cᵗ = A·D − Mn where Φ holds the kernel
//     φ(r) = r²·ln r between control points, with the diagonal set to a small
//     constant (DefaultDiagonal).
//
// Evaluation computes Q3·D − (c·Φqᵗ)ᵗ for the normalized queries Q and maps
// the result back through the map normalization. A query sitting exactly on a
// control point resolves φ(0) to its limit 0; WithRawQueryKernel keeps the
// literal ln(0) evaluation instead.
//
// Splines are immutable. WithAddedPoint refits from scratch and returns a new
// spline. Accessors hand out copies, so independent splines can be used from
// many goroutines at once.
//
// Errors:
//
//   - ErrLengthMismatch: PairsFromSlices got slices of different lengths.
//   - ErrZeroSpan: every coordinate shares one value on an axis.
//   - *FitError: a fit stage failed; it wraps the cause, typically
//     matrix.ErrSingular for collinear or coincident control points.
//
// The package logs through log/slog and is silent until SetLogger is called.
package tps
