// SPDX-License-Identifier: MIT

package tps

import (
	"fmt"

	"github.com/katalvlaran/tpswarp/matrix"
)

// InfoLen is the length of RenderParams.Info.
const InfoLen = 11

// Frame is the visible region of the real system, given by three corners.
type Frame struct {
	TopLeft    Coordinate `json:"topLeft"`
	TopRight   Coordinate `json:"topRight"`
	BottomLeft Coordinate `json:"bottomLeft"`
}

// RenderParams is the flat float32 contract for renderers that evaluate the
// warp formula themselves.
//
// Layout:
//   - Info[0:2]  normalized top-left corner of the frame.
//   - Info[2:4]  normalized right vector (top-right − top-left).
//   - Info[4:6]  normalized down vector (bottom-left − top-left).
//   - Info[6]    m.
//   - Info[7:9]  map translation (x, y).
//   - Info[9:11] map scale (x, y).
//   - Points     normalized real control points, column-major m×2:
//     x0..x(m-1), y0..y(m-1).
//   - D          column-major 3×2: Dx0, Dx1, Dx2, Dy0, Dy1, Dy2.
//   - C          column-major 2×m: cx0, cy0, cx1, cy1, ...
//
// A renderer computes, for a normalized real point q:
//
//	w = [qx qy 1]·D − Σⱼ cⱼ·φ(|q − pⱼ|)
//
// and maps w back with w/scale − trans. A shader evaluating φ(0) as 0·ln 0
// gets NaN on a control point; Warp matches that formula bit for bit only
// under WithRawQueryKernel, and resolves φ(0) to 0 otherwise.
type RenderParams struct {
	Info   [InfoLen]float32 `json:"info"`
	Points []float32         `json:"points"`
	D      []float32         `json:"d"`
	C      []float32         `json:"c"`
}

// RenderParams lays out the spline for a renderer showing frame.
func (s *Spline) RenderParams(frame Frame) (*RenderParams, error) {
	corners := s.realNorm.Apply([]Coordinate{frame.TopLeft, frame.TopRight, frame.BottomLeft}).Data()
	tlx, tly := corners[0], corners[1]

	p := &RenderParams{}
	p.Info[0], p.Info[1] = tlx, tly
	p.Info[2], p.Info[3] = corners[2]-tlx, corners[3]-tly
	p.Info[4], p.Info[5] = corners[4]-tlx, corners[5]-tly
	p.Info[6] = float32(s.m)
	p.Info[7], p.Info[8] = float32(s.mapNorm.Trans.X), float32(s.mapNorm.Trans.Y)
	p.Info[9], p.Info[10] = float32(s.mapNorm.Scale.X), float32(s.mapNorm.Scale.Y)

	var err error
	if p.Points, err = columnMajor(s.rn); err != nil {
		return nil, fmt.Errorf("RenderParams: points: %w", err)
	}
	if p.D, err = columnMajor(s.d); err != nil {
		return nil, fmt.Errorf("RenderParams: D: %w", err)
	}
	if p.C, err = columnMajor(s.c); err != nil {
		return nil, fmt.Errorf("RenderParams: c: %w", err)
	}

	return p, nil
}

// Flatten concatenates Info, Points, D and C into one buffer.
func (p *RenderParams) Flatten() []float32 {
	out := make([]float32, 0, InfoLen+len(p.Points)+len(p.D)+len(p.C))
	out = append(out, p.Info[:]...)
	out = append(out, p.Points...)
	out = append(out, p.D...)

	return append(out, p.C...)
}

// columnMajor flattens m column by column.
func columnMajor(m *matrix.Dense) ([]float32, error) {
	t, err := matrix.Transpose(m)
	if err != nil {
		return nil, err
	}

	return t.Data(), nil
}
