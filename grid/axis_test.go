// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bsfdm/grid"
)

func TestNewSpatial_Sizes(t *testing.T) {
	cases := []struct {
		dx   float64
		want int
	}{
		{0.05, 101},
		{0.1, 51},
		{0.025, 201},
		{0.3, 17}, // 5/0.3 = 16.67
		{2.5, 3},
	}
	for _, tc := range cases {
		s, err := grid.NewSpatial(tc.dx)
		require.NoError(t, err, "dx=%v", tc.dx)
		assert.Equal(t, tc.want, s.Len(), "dx=%v", tc.dx)
		assert.Equal(t, grid.XMin, s.X[0])
		assert.LessOrEqual(t, s.X[s.Len()-1], grid.XMax+1e-9)
	}
}

func TestNewSpatial_ATM(t *testing.T) {
	s, err := grid.NewSpatial(0.05)
	require.NoError(t, err)
	assert.Equal(t, 50, s.ATM())
	assert.InDelta(t, 0, s.X[s.ATM()], 1e-12)
}

func TestNewSpatial_Errors(t *testing.T) {
	for _, dx := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := grid.NewSpatial(dx)
		assert.ErrorIs(t, err, grid.ErrBadStep, "dx=%v", dx)
	}
	_, err := grid.NewSpatial(3)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)
}

func TestNewTemporal(t *testing.T) {
	tm, err := grid.NewTemporal(0.8, 1, 0.00125)
	require.NoError(t, err)
	assert.Equal(t, 257, tm.Len())
	assert.Equal(t, 256, tm.Last())
	assert.InDelta(t, 0.32, tm.Max, 1e-15)
	assert.InDelta(t, 0.32, tm.T[tm.Last()], 1e-12)
	assert.Zero(t, tm.T[0])

	_, err = grid.NewTemporal(0, 1, 0.001)
	assert.ErrorIs(t, err, grid.ErrBadVolatility)
	_, err = grid.NewTemporal(0.8, 0, 0.001)
	assert.ErrorIs(t, err, grid.ErrBadExpiry)
	_, err = grid.NewTemporal(0.8, 1, 0)
	assert.ErrorIs(t, err, grid.ErrBadStep)
	_, err = grid.NewTemporal(0.8, 1, 0.5)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)
}

func TestNewDomain(t *testing.T) {
	dom, err := grid.NewDomain(0.03, 0.04, 0.8, 1, 0.05, 0.00125)
	require.NoError(t, err)
	assert.Equal(t, 101, dom.Space.Len())
	assert.Equal(t, 257, dom.Time.Len())
	assert.InDelta(t, 0.5, dom.W, 1e-12)

	_, err = grid.NewDomain(0.03, 0.04, -0.8, 1, 0.05, 0.00125)
	assert.ErrorIs(t, err, grid.ErrBadVolatility)
	_, err = grid.NewDomain(0.03, 0.04, 0.8, 1, 0, 0.00125)
	assert.ErrorIs(t, err, grid.ErrBadStep)
	_, err = grid.NewDomain(math.NaN(), 0.04, 0.8, 1, 0.05, 0.00125)
	assert.ErrorIs(t, err, grid.ErrBadRate)
	_, err = grid.NewDomain(0.03, 0.04, 0.8, 1, 4, 0.00125)
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)
}

func TestDomain_SeedAndEdges(t *testing.T) {
	dom, err := grid.NewDomain(0.03, 0.04, 0.8, 1, 0.1, 0.005)
	require.NoError(t, err)
	vg, err := dom.NewValueGrid(grid.FullGrid)
	require.NoError(t, err)
	require.NoError(t, dom.Seed(vg, -1))

	for i, x := range dom.Space.X {
		y, err := vg.At(i, 0)
		require.NoError(t, err)
		assert.Equal(t, dom.Transform.Payoff(x, -1), y)
	}

	lo, hi := dom.Edges(-1, 3, dom.W)
	assert.Equal(t, dom.Transform.Lower(-1, grid.XMin, dom.Time.T[3], dom.W), lo)
	assert.Zero(t, hi)
}
