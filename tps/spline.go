// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/katalvlaran/tpswarp/matrix"
	"github.com/paulmach/orb/planar"
)

// AffineTolerance is the relative pivot threshold for the affine normal
// equations. After normalization AᵗA has O(1) entries and collinear control
// points leave only float32 rounding noise (~1e-7) in its last pivot.
const AffineTolerance = 1e-5

// Spline is a fitted thin-plate spline from the real system to the map
// system. It is immutable; obtain one from Fit.
type Spline struct {
	m         int
	realCoord []Coordinate
	mapCoord  []Coordinate
	realNorm  Normalization
	mapNorm   Normalization
	rn        *matrix.Dense // m×2 normalized real control points
	d         *matrix.Dense // 3×2 affine part
	c         *matrix.Dense // 2×m radial coefficients
	opts      Options
}

// Fit builds a spline from control pairs.
//
// Implementation:
//   - Stage 1: Dedup by real coordinate; m = unique count.
//   - Stage 2: m < MinControlPoints returns a degenerate spline with identity
//     normalization, zero D (3×2) and zero c (2×m).
//   - Stage 3: normalize both systems; A = [Rn | 1]; D = (AᵗA)⁻¹·Aᵗ·Mn.
//     Pivots of AᵗA within AffineTolerance of its largest entry are zero.
//   - Stage 4: Φ = φ(dist(Rn, Rn)) with the diagonal overwritten;
//     c = (Φ⁻¹·(A·D − Mn))ᵗ. Only an exactly zero pivot of Φ is singular.
//
// Errors:
//   - *FitError with Stage StageNormalize wrapping ErrZeroSpan.
//   - *FitError with Stage StageAffine or StageKernel wrapping
//     matrix.ErrSingular (collinear or coincident control points).
//
// Complexity:
//   - Time O(m³), Space O(m²).
func Fit(pairs []CoordPair, opts ...Option) (*Spline, error) {
	o := gatherOptions(opts...)
	reals, maps := Dedup(pairs)
	m := len(reals)
	log := Logger()

	s := &Spline{
		m:         m,
		realCoord: reals,
		mapCoord:  maps,
		opts:      o,
	}
	if m < MinControlPoints {
		log.Debug("tps: degenerate fit", "pairs", len(pairs), "m", m)
		return s.degenerate(), nil
	}

	s, err := s.fit()
	if err != nil {
		log.Warn("tps: fit failed", "m", m, "err", err)
		return nil, err
	}
	log.Debug("tps: fit", "pairs", len(pairs), "m", m)

	return s, nil
}

func (s *Spline) degenerate() *Spline {
	s.realNorm, s.mapNorm = Identity(), Identity()
	s.rn, _ = matrix.NewZeros(s.m, 2)
	s.d, _ = matrix.NewZeros(3, 2)
	s.c, _ = matrix.NewZeros(2, s.m)

	return s
}

func (s *Spline) fit() (*Spline, error) {
	var err error
	fail := func(stage string, err error) (*Spline, error) {
		return nil, &FitError{Stage: stage, M: s.m, Err: err}
	}

	if s.realNorm, err = NewNormalization(s.realCoord); err != nil {
		return fail(StageNormalize, fmt.Errorf("real: %w", err))
	}
	if s.mapNorm, err = NewNormalization(s.mapCoord); err != nil {
		return fail(StageNormalize, fmt.Errorf("map: %w", err))
	}
	s.rn = s.realNorm.Apply(s.realCoord)
	mn := s.mapNorm.Apply(s.mapCoord)

	a, err := matrix.AppendColumn(s.rn, 1)
	if err != nil {
		return fail(StageAffine, err)
	}
	if s.d, err = solveAffine(a, mn); err != nil {
		return fail(StageAffine, err)
	}

	phi, err := kernelMatrix(s.rn, s.opts.diagonal+s.opts.regularization)
	if err != nil {
		return fail(StageKernel, err)
	}
	ad, err := matrix.Mul(a, s.d)
	if err != nil {
		return fail(StageKernel, err)
	}
	residual, err := matrix.Sub(ad, mn)
	if err != nil {
		return fail(StageKernel, err)
	}
	phiInv, err := matrix.Inverse(phi)
	if err != nil {
		return fail(StageKernel, err)
	}
	x, err := matrix.Mul(phiInv, residual)
	if err != nil {
		return fail(StageKernel, err)
	}
	if s.c, err = matrix.Transpose(x); err != nil {
		return fail(StageKernel, err)
	}

	return s, nil
}

// solveAffine returns D = (AᵗA)⁻¹·Aᵗ·B through the normal equations.
// Collinear control points make AᵗA rank deficient and yield ErrSingular.
func solveAffine(a, b *matrix.Dense) (*matrix.Dense, error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	ata, err := matrix.Mul(at, a)
	if err != nil {
		return nil, err
	}
	atb, err := matrix.Mul(at, b)
	if err != nil {
		return nil, err
	}

	inv, err := matrix.InverseTol(ata, AffineTolerance)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(inv, atb)
}

// WithAddedPoint refits from Pairs() plus one new pair under the same options.
// The receiver is left untouched.
func (s *Spline) WithAddedPoint(realPt, mapPt Coordinate) (*Spline, error) {
	pairs := append(s.Pairs(), CoordPair{Real: realPt, Map: mapPt})

	return Fit(pairs, s.optionList()...)
}

// optionList turns the stored Options back into setters for a refit.
func (s *Spline) optionList() []Option {
	o := s.opts

	return []Option{func(dst *Options) { *dst = o }}
}

// M returns the number of unique control points.
func (s *Spline) M() int { return s.m }

// Degenerate reports whether the spline had too few points to fit.
func (s *Spline) Degenerate() bool { return s.m < MinControlPoints }

// Pairs returns the deduplicated control pairs in input order.
func (s *Spline) Pairs() []CoordPair {
	pairs, _ := PairsFromSlices(s.realCoord, s.mapCoord) // equal length by construction

	return pairs
}

// RealCoords returns a copy of the unique real control coordinates.
func (s *Spline) RealCoords() []Coordinate { return append([]Coordinate(nil), s.realCoord...) }

// MapCoords returns a copy of the map coordinates matching RealCoords.
func (s *Spline) MapCoords() []Coordinate { return append([]Coordinate(nil), s.mapCoord...) }

// Center returns the arithmetic mean of the real control coordinates, or Zero
// when there are none.
func (s *Spline) Center() Coordinate {
	if s.m == 0 {
		return Zero
	}
	p, _ := planar.CentroidArea(multiPoint(s.realCoord))

	return FromPoint(p)
}

// Affine returns a copy of the 3×2 affine coefficients D.
func (s *Spline) Affine() *matrix.Dense { return s.d.Clone() }

// Radial returns a copy of the 2×m radial coefficients c.
func (s *Spline) Radial() *matrix.Dense { return s.c.Clone() }

// RealNormalization returns the normalization of the real system.
func (s *Spline) RealNormalization() Normalization { return s.realNorm }

// MapNormalization returns the normalization of the map system.
func (s *Spline) MapNormalization() Normalization { return s.mapNorm }
