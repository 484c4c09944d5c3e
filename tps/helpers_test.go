// SPDX-License-Identifier: MIT

package tps_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpswarp/matrix"
	"github.com/katalvlaran/tpswarp/tps"
	"github.com/stretchr/testify/require"
)

// bentPairs returns ten scattered control pairs under a smooth non-affine map
// spanning roughly 200×170 map units.
func bentPairs() []tps.CoordPair {
	reals := []tps.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0.1},
		{X: 0, Y: 1}, {X: 1.1, Y: 1.2}, {X: 2, Y: 1},
		{X: 0.1, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2.1},
		{X: 0.5, Y: 1.6},
	}
	pairs := make([]tps.CoordPair, len(reals))
	for i, r := range reals {
		pairs[i] = tps.CoordPair{Real: r, Map: bend(r)}
	}

	return pairs
}

func bend(r tps.Coordinate) tps.Coordinate {
	return tps.Coordinate{
		X: 100*r.X + 10*math.Sin(r.Y),
		Y: 80*r.Y + 5*r.X*r.X,
	}
}

// affinePairs maps the unit triangle through a pure 2× scale.
func affinePairs() []tps.CoordPair {
	return []tps.CoordPair{
		{Real: tps.Coordinate{X: 0, Y: 0}, Map: tps.Coordinate{X: 0, Y: 0}},
		{Real: tps.Coordinate{X: 1, Y: 0}, Map: tps.Coordinate{X: 2, Y: 0}},
		{Real: tps.Coordinate{X: 0, Y: 1}, Map: tps.Coordinate{X: 0, Y: 2}},
	}
}

func mustFit(t testing.TB, pairs []tps.CoordPair, opts ...tps.Option) *tps.Spline {
	t.Helper()
	s, err := tps.Fit(pairs, opts...)
	require.NoError(t, err)

	return s
}

func requireCoordsClose(t testing.TB, want, got []tps.Coordinate, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i].X, got[i].X, tol, "point %d x", i)
		require.InDeltaf(t, want[i].Y, got[i].Y, tol, "point %d y", i)
	}
}

func at(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return float64(v)
}

// gridQueries covers the control region and a margin around it.
func gridQueries(n int) []tps.Coordinate {
	out := make([]tps.Coordinate, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, tps.Coordinate{
				X: -0.25 + 2.5*float64(i)/float64(n-1),
				Y: -0.25 + 2.5*float64(j)/float64(n-1),
			})
		}
	}

	return out
}
