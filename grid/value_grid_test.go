// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bsfdm/grid"
)

func TestNewValueGrid_Errors(t *testing.T) {
	_, err := grid.NewValueGrid(2, 5, grid.FullGrid)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)
	_, err = grid.NewValueGrid(3, 1, grid.FullGrid)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)
	_, err = grid.NewValueGrid(3, 3, grid.MemoryMode(9))
	assert.ErrorIs(t, err, grid.ErrBadMode)
}

func TestValueGrid_FullAtSet(t *testing.T) {
	g, err := grid.NewValueGrid(3, 4, grid.FullGrid)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, "full", g.Mode().String())

	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			require.NoError(t, g.Set(i, j, float64(10*i+j)))
		}
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			v, err := g.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, float64(10*i+j), v)
		}
	}

	// Columns are contiguous views.
	col, err := g.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 12, 22}, col)
	col[1] = -1
	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
}

func TestValueGrid_OutOfRange(t *testing.T) {
	g, err := grid.NewValueGrid(3, 4, grid.FullGrid)
	require.NoError(t, err)

	_, err = g.At(3, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(-1, 0, 1), grid.ErrOutOfRange)
	_, err = g.Column(4)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestValueGrid_Rolling(t *testing.T) {
	g, err := grid.NewValueGrid(3, 10, grid.RollingColumns)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, "rolling", g.Mode().String())

	for j := 0; j < 10; j++ {
		col, err := g.Column(j)
		require.NoError(t, err)
		for i := range col {
			col[i] = float64(j)
		}
	}

	// Only the last two columns survive.
	v, err := g.At(1, 9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	v, err = g.At(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	_, err = g.At(1, 7)
	assert.ErrorIs(t, err, grid.ErrColumnEvicted)
	_, err = g.Column(0)
	assert.ErrorIs(t, err, grid.ErrColumnEvicted)
}

func TestValueGrid_String(t *testing.T) {
	g, err := grid.NewValueGrid(3, 2, grid.FullGrid)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 1.5))
	assert.Equal(t, "[0, 1.5]\n[0, 0]\n[0, 0]\n", g.String())
}
