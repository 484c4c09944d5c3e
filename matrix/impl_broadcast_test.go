// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tpswarp/matrix"
	"github.com/stretchr/testify/require"
)

func TestExpandRows(t *testing.T) {
	row := MustRows(t, [][]float32{{1, 2, 3}})
	out, err := matrix.ExpandRows(row, 3)
	require.NoError(t, err)
	require.True(t, MustRows(t, [][]float32{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}).Equal(out))

	empty, err := matrix.ExpandRows(row, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 3, empty.Cols())

	_, err = matrix.ExpandRows(MustRows(t, [][]float32{{1}, {2}}), 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ExpandRows(row, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestExpandCols(t *testing.T) {
	col := MustRows(t, [][]float32{{1}, {2}})
	out, err := matrix.ExpandCols(col, 3)
	require.NoError(t, err)
	require.True(t, MustRows(t, [][]float32{{1, 1, 1}, {2, 2, 2}}).Equal(out))

	_, err = matrix.ExpandCols(MustRows(t, [][]float32{{1, 2}}), 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ExpandCols(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowSumSquares(t *testing.T) {
	m := MustRows(t, [][]float32{{3, 4}, {0, 0}, {-1, 2}})
	got, err := matrix.RowSumSquares(m)
	require.NoError(t, err)
	require.Equal(t, []float32{25, 0, 5}, got)
}

// The outer-sum distance identity relies on ‖x‖² matching x·xᵀ exactly.
func TestRowSumSquares_MatchesSelfProduct(t *testing.T) {
	m := RandomDense(t, 3, 16, 2)
	norms, err := matrix.RowSumSquares(m)
	require.NoError(t, err)

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	gram, err := matrix.Mul(m, mt)
	require.NoError(t, err)
	for i, n := range norms {
		require.Equal(t, n, MustAt(t, gram, i, i), "row %d", i)
	}
}

func TestAppendColumn(t *testing.T) {
	m := MustRows(t, [][]float32{{1, 2}, {3, 4}})
	out, err := matrix.AppendColumn(m, 1)
	require.NoError(t, err)
	require.True(t, MustRows(t, [][]float32{{1, 2, 1}, {3, 4, 1}}).Equal(out))

	empty, _ := matrix.NewDense(0, 2)
	out, err = matrix.AppendColumn(empty, 1)
	require.NoError(t, err)
	require.Equal(t, 0, out.Rows())
	require.Equal(t, 3, out.Cols())
}
