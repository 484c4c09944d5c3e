// SPDX-License-Identifier: MIT

package tps

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of query points per goroutine in WarpParallel.
const DefaultChunkSize = 4096

// WarpParallel warps points in chunks of chunkSize on up to GOMAXPROCS
// goroutines. Each output row depends only on its own query, so the result
// is identical to Warp. chunkSize <= 0 selects DefaultChunkSize.
//
// Errors:
//   - ctx.Err() when ctx is cancelled before all chunks finish.
//   - the first chunk error otherwise.
func (s *Spline) WarpParallel(ctx context.Context, points []Coordinate, chunkSize int) ([]Coordinate, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(points) <= chunkSize {
		return s.Warp(points)
	}

	out := make([]Coordinate, len(points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(points); lo += chunkSize {
		lo := lo
		hi := min(lo+chunkSize, len(points))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := s.Warp(points[lo:hi])
			if err != nil {
				return fmt.Errorf("WarpParallel: chunk [%d:%d): %w", lo, hi, err)
			}
			copy(out[lo:hi], w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
