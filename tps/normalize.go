// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/katalvlaran/tpswarp/matrix"
)

// Normalization is a per-axis affine map into the unit square:
// normalized = (v + Trans) * Scale.
type Normalization struct {
	Trans Coordinate `json:"trans"`
	Scale Coordinate `json:"scale"`
}

// Identity returns the normalization that leaves coordinates unchanged.
func Identity() Normalization {
	return Normalization{Trans: Zero, Scale: Ones}
}

// NewNormalization derives Trans = -min and Scale = 1/(max-min) per axis from
// the bounding box of coords, so that coords land in [0,1]².
//
// Errors:
//   - ErrNoCoordinates for an empty set.
//   - ErrZeroSpan when max == min on either axis.
func NewNormalization(coords []Coordinate) (Normalization, error) {
	if len(coords) == 0 {
		return Normalization{}, ErrNoCoordinates
	}
	b := multiPoint(coords).Bound()
	spanX, spanY := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if spanX == 0 {
		return Normalization{}, fmt.Errorf("x = %g: %w", b.Min.X(), ErrZeroSpan)
	}
	if spanY == 0 {
		return Normalization{}, fmt.Errorf("y = %g: %w", b.Min.Y(), ErrZeroSpan)
	}

	return Normalization{
		Trans: Coordinate{X: -b.Min.X(), Y: -b.Min.Y()},
		Scale: Coordinate{X: 1 / spanX, Y: 1 / spanY},
	}, nil
}

// Forward normalizes a single coordinate in float64.
func (n Normalization) Forward(c Coordinate) Coordinate {
	return Coordinate{X: (c.X + n.Trans.X) * n.Scale.X, Y: (c.Y + n.Trans.Y) * n.Scale.Y}
}

// Inverse undoes Forward: v*(1/Scale) + (-Trans).
func (n Normalization) Inverse(c Coordinate) Coordinate {
	return Coordinate{X: c.X*(1/n.Scale.X) - n.Trans.X, Y: c.Y*(1/n.Scale.Y) - n.Trans.Y}
}

// Apply normalizes coords into an n×2 matrix. The arithmetic runs in float64
// and each result is rounded once to float32.
func (n Normalization) Apply(coords []Coordinate) *matrix.Dense {
	data := make([]float32, 2*len(coords))
	for i, c := range coords {
		f := n.Forward(c)
		data[2*i] = float32(f.X)
		data[2*i+1] = float32(f.Y)
	}
	m, _ := matrix.NewDenseFromData(len(coords), 2, data) // shape matches by construction

	return m
}

// Unapply maps every row of an n×2 matrix back through Inverse.
func (n Normalization) Unapply(m *matrix.Dense) ([]Coordinate, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Unapply: %w", err)
	}
	if m.Cols() != 2 {
		return nil, fmt.Errorf("Unapply: %d columns, want 2: %w", m.Cols(), matrix.ErrDimensionMismatch)
	}
	data := m.Data()
	out := make([]Coordinate, m.Rows())
	for i := range out {
		out[i] = n.Inverse(Coordinate{X: float64(data[2*i]), Y: float64(data[2*i+1])})
	}

	return out, nil
}
