// Package tpswarp maps coordinates between a real-world system and the pixel
// system of a photographed map using thin-plate splines.
//
// 🚀 What is tpswarp?
//
//	A small, pure-Go warping engine that brings together:
//		• Dense float32 matrices with a pivoted LU solver
//		• Unit-square normalization of both coordinate systems
//		• Thin-plate spline fitting with singular-set detection
//		• Batch and parallel warping of query points
//		• A JSON pair codec and a flat parameter layout for GPU renderers
//
// Under the hood, everything is organized under two packages and a command:
//
//	matrix/       Dense type, element-wise kernels, Mul, Transpose, LU solve, Inverse
//	tps/          Coordinate, CoordPair, Normalization, Fit, Spline.Warp, codec, RenderParams
//	cmd/tpswarp/  warp, params, swap and center on pair files
//
// Quick example:
//
//	pairs := []tps.CoordPair{
//		{Real: tps.Coordinate{X: 0, Y: 0}, Map: tps.Coordinate{X: 0, Y: 0}},
//		{Real: tps.Coordinate{X: 1, Y: 0}, Map: tps.Coordinate{X: 2, Y: 0}},
//		{Real: tps.Coordinate{X: 0, Y: 1}, Map: tps.Coordinate{X: 0, Y: 2}},
//	}
//	s, err := tps.Fit(pairs)
//	if err != nil {
//		// *tps.FitError: collinear points, zero span, ...
//	}
//	p, _ := s.WarpOne(tps.Coordinate{X: 0.5, Y: 0.5}) // (1, 1)
//
//	go install github.com/katalvlaran/tpswarp/cmd/tpswarp@latest
package tpswarp
