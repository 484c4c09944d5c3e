// SPDX-License-Identifier: MIT

package tps_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpswarp/tps"
	"github.com/stretchr/testify/require"
)

func TestRenderParams_Layout(t *testing.T) {
	s := mustFit(t, affinePairs())
	frame := tps.Frame{
		TopLeft:    tps.Coordinate{X: 0, Y: 1},
		TopRight:   tps.Coordinate{X: 1, Y: 1},
		BottomLeft: tps.Coordinate{X: 0, Y: 0},
	}

	p, err := s.RenderParams(frame)
	require.NoError(t, err)
	require.Equal(t, [tps.InfoLen]float32{
		0, 1, // top-left
		1, 0, // right
		0, -1, // down
		3,        // m
		0, 0, // map trans
		0.5, 0.5, // map scale
	}, p.Info)
	require.Equal(t, []float32{0, 1, 0, 0, 0, 1}, p.Points)
	require.Equal(t, []float32{1, 0, 0, 0, 1, 0}, p.D)
	require.Len(t, p.C, 6)

	flat := p.Flatten()
	require.Len(t, flat, tps.InfoLen+6+6+6)
	require.Equal(t, p.Info[:], flat[:tps.InfoLen])
	require.Equal(t, p.C, flat[len(flat)-6:])
}

func TestRenderParams_Degenerate(t *testing.T) {
	s := mustFit(t, affinePairs()[:2])
	p, err := s.RenderParams(tps.Frame{})
	require.NoError(t, err)
	require.Equal(t, float32(2), p.Info[6])
	require.Equal(t, float32(1), p.Info[9])
	require.Len(t, p.Points, 4)
	require.Len(t, p.D, 6)
	require.Len(t, p.C, 4)
}

// renderWarp evaluates the warp from the flat layout alone, the way a shader
// would.
func renderWarp(p *tps.RenderParams, q tps.Coordinate, realNorm tps.Normalization) tps.Coordinate {
	m := int(p.Info[6])
	qn := realNorm.Forward(q)
	d := func(i, j int) float64 { return float64(p.D[j*3+i]) }
	wx := qn.X*d(0, 0) + qn.Y*d(1, 0) + d(2, 0)
	wy := qn.X*d(0, 1) + qn.Y*d(1, 1) + d(2, 1)
	for j := 0; j < m; j++ {
		dx := qn.X - float64(p.Points[j])
		dy := qn.Y - float64(p.Points[m+j])
		r := math.Hypot(dx, dy)
		phi := r * r * math.Log(r)
		wx -= float64(p.C[2*j]) * phi
		wy -= float64(p.C[2*j+1]) * phi
	}

	return tps.Coordinate{
		X: wx/float64(p.Info[9]) - float64(p.Info[7]),
		Y: wy/float64(p.Info[10]) - float64(p.Info[8]),
	}
}

func TestRenderParams_ReproducesWarp(t *testing.T) {
	s := mustFit(t, bentPairs())
	p, err := s.RenderParams(tps.Frame{})
	require.NoError(t, err)

	queries := []tps.Coordinate{{X: 0.3, Y: 0.4}, {X: 1.7, Y: 1.1}, {X: 2.4, Y: -0.2}}
	want, err := s.Warp(queries)
	require.NoError(t, err)
	for i, q := range queries {
		got := renderWarp(p, q, s.RealNormalization())
		require.InDeltaf(t, want[i].X, got.X, 0.05, "query %d x", i)
		require.InDeltaf(t, want[i].Y, got.Y, 0.05, "query %d y", i)
	}
}
