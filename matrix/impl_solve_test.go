// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpswarp/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum widens a Dense into a gonum matrix for use as an oracle.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	data := m.Data()
	wide := make([]float64, len(data))
	for i, v := range data {
		wide[i] = float64(v)
	}

	return mat.NewDense(r, c, wide)
}

func TestSolve_MatchesGonum(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		a := DiagonallyDominant(t, int64(100+n), n)
		b := RandomDense(t, int64(200+n), n, 3)

		x, err := matrix.Solve(a, b)
		require.NoError(t, err)
		require.Equal(t, n, x.Rows())
		require.Equal(t, 3, x.Cols())

		var want mat.Dense
		require.NoError(t, want.Solve(toGonum(a), toGonum(b)))
		for i := 0; i < n; i++ {
			for j := 0; j < 3; j++ {
				require.InDeltaf(t, want.At(i, j), float64(MustAt(t, x, i, j)), 1e-5, "n=%d (%d,%d)", n, i, j)
			}
		}
	}
}

func TestSolve_NonSymmetric(t *testing.T) {
	a := MustRows(t, [][]float32{
		{2, 1, 0},
		{-1, 3, 2},
		{4, 0, 1},
	})
	b := MustRows(t, [][]float32{{3}, {4}, {5}})
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)

	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	RequireClose(t, b, ax, 1e-5)
}

func TestInverse_MatchesGonum(t *testing.T) {
	a := DiagonallyDominant(t, 42, 6)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(toGonum(a)))
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			require.InDelta(t, want.At(i, j), float64(MustAt(t, inv, i, j)), 1e-5)
		}
	}
}

func TestSolve_Singular(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float32
	}{
		{"zero", [][]float32{{0, 0}, {0, 0}}},
		{"dependent rows", [][]float32{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}},
		{"zero column", [][]float32{{1, 0}, {3, 0}}},
		{"nan", [][]float32{{float32(math.NaN()), 1}, {1, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := MustRows(t, tc.a)
			I, err := matrix.NewIdentity(a.Rows())
			require.NoError(t, err)
			x, err := matrix.Solve(a, I)
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Nil(t, x)
		})
	}
}

func TestSolve_ShapeErrors(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 1)
	_, err := matrix.Solve(a, b)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq := DiagonallyDominant(t, 1, 3)
	_, err = matrix.Solve(sq, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(sq, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLUFactor_ReusedAcrossRightHandSides(t *testing.T) {
	a := DiagonallyDominant(t, 5, 4)
	f, err := matrix.LUFactor(a)
	require.NoError(t, err)
	require.Equal(t, 4, f.Order())

	b1 := RandomDense(t, 6, 4, 1)
	b2 := RandomDense(t, 8, 4, 2)
	for _, b := range []*matrix.Dense{b1, b2} {
		x, err := f.Solve(b)
		require.NoError(t, err)
		direct, err := matrix.Solve(a, b)
		require.NoError(t, err)
		require.True(t, direct.Equal(x), "factor reuse must match a direct solve")
	}

	wrong, _ := matrix.NewDense(3, 1)
	_, err = f.Solve(wrong)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_EmptySystem(t *testing.T) {
	a, _ := matrix.NewDense(0, 0)
	b, _ := matrix.NewDense(0, 2)
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, x.Rows())
	require.Equal(t, 2, x.Cols())
}

// TestSolveTol_RelativeThreshold uses a matrix whose second pivot is ~1e-6
// of its largest entry: exact zero checks accept it, a 1e-5 threshold does
// not, and scaling A by a power of two changes neither verdict.
func TestSolveTol_RelativeThreshold(t *testing.T) {
	a := MustRows(t, [][]float32{{1, 1}, {1, 1 + 1e-6}})
	b := MustRows(t, [][]float32{{1}, {2}})
	big, err := matrix.Scale(a, 1024)
	require.NoError(t, err)

	for _, m := range []*matrix.Dense{a, big} {
		_, err = matrix.Solve(m, b)
		require.NoError(t, err)
		_, err = matrix.SolveTol(m, b, 1e-7)
		require.NoError(t, err)

		x, err := matrix.SolveTol(m, b, 1e-5)
		require.ErrorIs(t, err, matrix.ErrSingular)
		require.Nil(t, x)

		inv, err := matrix.InverseTol(m, 1e-5)
		require.ErrorIs(t, err, matrix.ErrSingular)
		require.Nil(t, inv)
	}
}

func TestSolveTol_ZeroMatchesSolve(t *testing.T) {
	a := DiagonallyDominant(t, 77, 5)
	b := RandomDense(t, 78, 5, 2)

	x0, err := matrix.Solve(a, b)
	require.NoError(t, err)
	x1, err := matrix.SolveTol(a, b, 0)
	require.NoError(t, err)
	require.True(t, x0.Equal(x1))
}

func TestLUFactorTol_InvalidTolerance(t *testing.T) {
	a := DiagonallyDominant(t, 3, 3)
	for _, tol := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		f, err := matrix.LUFactorTol(a, tol)
		require.ErrorIs(t, err, matrix.ErrInvalidTolerance)
		require.Nil(t, f)
	}
}
