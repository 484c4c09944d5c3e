// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/katalvlaran/tpswarp/matrix"
)

// Warp carries real-system points into the map system. The result has the
// same length and order as points; an empty input yields an empty, non-nil
// slice. A degenerate spline maps every point to Zero.
//
// Implementation:
//   - Stage 1: Qn = real normalization of points; Q3 = [Qn | 1].
//   - Stage 2: Φq = φ(dist(Rn, Qn)), m×n.
//   - Stage 3: W = Q3·D − (c·Φq)ᵗ, then map-system Unapply.
//
// Complexity:
//   - Time O(n·m), Space O(n·m).
func (s *Spline) Warp(points []Coordinate) ([]Coordinate, error) {
	if len(points) == 0 {
		return []Coordinate{}, nil
	}
	if s.Degenerate() {
		return make([]Coordinate, len(points)), nil
	}

	qn := s.realNorm.Apply(points)
	q3, err := matrix.AppendColumn(qn, 1)
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}
	dist, err := pairwiseDistances(s.rn, qn)
	if err != nil {
		return nil, fmt.Errorf("Warp: distances: %w", err)
	}
	phi, err := radialKernel(dist, !s.opts.rawQueryKernel)
	if err != nil {
		return nil, fmt.Errorf("Warp: kernel: %w", err)
	}

	affine, err := matrix.Mul(q3, s.d)
	if err != nil {
		return nil, fmt.Errorf("Warp: affine: %w", err)
	}
	radial, err := matrix.Mul(s.c, phi)
	if err != nil {
		return nil, fmt.Errorf("Warp: radial: %w", err)
	}
	radial, err = matrix.Transpose(radial)
	if err != nil {
		return nil, fmt.Errorf("Warp: radial: %w", err)
	}
	w, err := matrix.Sub(affine, radial)
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}

	return s.mapNorm.Unapply(w)
}

// WarpOne warps a single point.
func (s *Spline) WarpOne(p Coordinate) (Coordinate, error) {
	out, err := s.Warp([]Coordinate{p})
	if err != nil {
		return Coordinate{}, err
	}

	return out[0], nil
}
