// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/olsinfer/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	d, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0), "matrix must not alias caller slice")
	assert.Equal(t, 4.0, MustAt(t, d, 1, 1))
}

func TestNewDenseFrom_Rejects(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 7))
	assert.Equal(t, 7.0, MustAt(t, d, 1, 2))

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	d := NewFilledDense(t, 1, 2, []float64{1, 2})
	c := d.Clone()
	require.NoError(t, d.Set(0, 0, 5))
	assert.Equal(t, 1.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, "[1, 2]\n[3, 4]\n", d.String())
}
