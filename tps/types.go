// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/paulmach/orb"
)

// MinControlPoints is the smallest number of unique pairs that yields a
// non-degenerate spline.
const MinControlPoints = 3

// Coordinate is a point in either coordinate system. No units are implied.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	// Zero is the origin.
	Zero = Coordinate{X: 0, Y: 0}
	// Ones is the coordinate (1, 1).
	Ones = Coordinate{X: 1, Y: 1}
)

// Point converts c to an orb.Point.
func (c Coordinate) Point() orb.Point { return orb.Point{c.X, c.Y} }

// FromPoint converts an orb.Point to a Coordinate.
func FromPoint(p orb.Point) Coordinate { return Coordinate{X: p.X(), Y: p.Y()} }

// String implements fmt.Stringer.
func (c Coordinate) String() string { return fmt.Sprintf("(%g, %g)", c.X, c.Y) }

// CoordPair links a real coordinate to its map coordinate. Two pairs are the
// same control point when their Real coordinates are equal.
type CoordPair struct {
	Real Coordinate `json:"real"`
	Map  Coordinate `json:"map"`
}

// PairsFromSlices zips two equally long slices into control pairs.
func PairsFromSlices(reals, maps []Coordinate) ([]CoordPair, error) {
	if len(reals) != len(maps) {
		return nil, fmt.Errorf("PairsFromSlices: %d reals, %d maps: %w", len(reals), len(maps), ErrLengthMismatch)
	}
	pairs := make([]CoordPair, len(reals))
	for i := range reals {
		pairs[i] = CoordPair{Real: reals[i], Map: maps[i]}
	}

	return pairs, nil
}

// Dedup drops every pair whose Real coordinate was already seen and splits
// the survivors into parallel slices. Input order is kept.
func Dedup(pairs []CoordPair) (reals, maps []Coordinate) {
	seen := make(map[Coordinate]struct{}, len(pairs))
	reals = make([]Coordinate, 0, len(pairs))
	maps = make([]Coordinate, 0, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p.Real]; dup {
			continue
		}
		seen[p.Real] = struct{}{}
		reals = append(reals, p.Real)
		maps = append(maps, p.Map)
	}

	return reals, maps
}

// multiPoint converts coordinates to an orb.MultiPoint.
func multiPoint(coords []Coordinate) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(coords))
	for i, c := range coords {
		mp[i] = c.Point()
	}

	return mp
}
