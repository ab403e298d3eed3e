// SPDX-License-Identifier: MIT

package analytic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bsfdm/analytic"
)

func TestClosedForm_TextbookValues(t *testing.T) {
	call, err := analytic.Call(100, 100, 0.05, 0, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.4506, call, 1e-4)

	put, err := analytic.Put(100, 100, 0.05, 0, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.5735, put, 1e-4)
}

func TestClosedForm_ReferenceScenario(t *testing.T) {
	call, err := analytic.ClosedForm(20, 20, 0.03, 0.04, 0.8, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.907002, call, 1e-6)

	put, err := analytic.ClosedForm(20, 20, 0.03, 0.04, 0.8, 1, -1)
	require.NoError(t, err)
	assert.InDelta(t, 6.100124, put, 1e-6)
}

func TestParity(t *testing.T) {
	cases := []struct {
		s, k, r, q, sigma, T float64
	}{
		{20, 20, 0.03, 0.04, 0.8, 1},
		{100, 90, 0.05, 0.01, 0.25, 0.5},
		{50, 70, -0.01, 0.02, 0.4, 2},
	}
	for _, tc := range cases {
		call, err := analytic.Call(tc.s, tc.k, tc.r, tc.q, tc.sigma, tc.T)
		require.NoError(t, err)
		put, err := analytic.Put(tc.s, tc.k, tc.r, tc.q, tc.sigma, tc.T)
		require.NoError(t, err)
		assert.InDelta(t, analytic.Parity(tc.s, tc.k, tc.r, tc.q, tc.T), call-put, 1e-10)
	}
}

func TestClosedForm_BadInput(t *testing.T) {
	cases := []struct {
		name string
		args [7]float64
	}{
		{"zero spot", [7]float64{0, 20, 0.03, 0.04, 0.8, 1, 1}},
		{"negative strike", [7]float64{20, -1, 0.03, 0.04, 0.8, 1, 1}},
		{"nan rate", [7]float64{20, 20, math.NaN(), 0.04, 0.8, 1, 1}},
		{"inf dividend", [7]float64{20, 20, 0.03, math.Inf(1), 0.8, 1, 1}},
		{"zero sigma", [7]float64{20, 20, 0.03, 0.04, 0, 1, 1}},
		{"zero expiry", [7]float64{20, 20, 0.03, 0.04, 0.8, 0, 1}},
		{"bad sign", [7]float64{20, 20, 0.03, 0.04, 0.8, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.args
			_, err := analytic.ClosedForm(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
			assert.ErrorIs(t, err, analytic.ErrBadInput)
		})
	}
}
