// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/olsinfer/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_FastAndFallbackAgree(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154})
	CompareClose(t, fast, want, 0)
	CompareClose(t, slow, want, 0)
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 2)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeAndScale(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	for _, in := range []matrix.Matrix{a, hide{a}} {
		at, err := matrix.Transpose(in)
		require.NoError(t, err)
		CompareClose(t, at, NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6}), 0)

		s, err := matrix.Scale(in, -2)
		require.NoError(t, err)
		CompareClose(t, s, NewFilledDense(t, 2, 3, []float64{-2, -4, -6, -8, -10, -12}), 0)
	}
}

func TestMatVec(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_Reconstructs(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{4, 3, 2, 2, 1, 3, 3, 2, 1})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	CompareClose(t, prod, a, 1e-12)
	assert.Equal(t, 1.0, MustAt(t, L, 0, 0))
	assert.Equal(t, 0.0, MustAt(t, U, 1, 0))
}

func TestInverse_KnownTwoByTwo(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := matrix.Inverse(hide{a})
	require.NoError(t, err)
	CompareClose(t, inv, NewFilledDense(t, 2, 2, []float64{0.6, -0.7, -0.2, 0.4}), 1e-12)

	id, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	CompareClose(t, id, NewFilledDense(t, 2, 2, []float64{1, 0, 0, 1}), 1e-12)
}

func TestInverse_SingularAndShape(t *testing.T) {
	_, err := matrix.Inverse(NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestGram_MatchesTransposeMul(t *testing.T) {
	x := NewFilledDense(t, 4, 3, []float64{
		1, 0, 2,
		1, 1, 0,
		1, 3, 5,
		1, 2, 1,
	})
	xt, err := matrix.Transpose(x)
	require.NoError(t, err)
	want, err := matrix.Mul(xt, x)
	require.NoError(t, err)

	got, err := matrix.Gram(hide{x})
	require.NoError(t, err)
	CompareClose(t, got, want, 0)

	diag, err := matrix.Diagonal(got)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 14, 30}, diag)

	_, err = matrix.Diagonal(x)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
