// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tpswarp/matrix"
	"github.com/stretchr/testify/require"
)

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts both matrices have the same shape and every element
// differs by at most tol.
func RequireClose(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.InDeltaf(t, float64(w), float64(g), tol, "cell (%d,%d)", i, j)
		}
	}
}

// RandomDense fills an r×c matrix with uniform values in [-1, 1) from a
// fixed-seed source so runs are reproducible.
func RandomDense(t testing.TB, seed int64, r, c int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, r*c)
	for i := range data {
		data[i] = float32(rng.Float64()*2 - 1)
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// DiagonallyDominant returns a random n×n matrix with |a_ii| > Σ|a_ij|,
// which is guaranteed invertible and well conditioned.
func DiagonallyDominant(t testing.TB, seed int64, n int) *matrix.Dense {
	t.Helper()
	m := RandomDense(t, seed, n, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		var sum float64
		for _, v := range row {
			sum += math.Abs(float64(v))
		}
		require.NoError(t, m.Set(i, i, float32(sum+1)))
	}

	return m
}
