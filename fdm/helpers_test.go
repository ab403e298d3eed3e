// SPDX-License-Identifier: MIT

package fdm_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bsfdm/analytic"
	"github.com/katalvlaran/bsfdm/fdm"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// scenario is the reference contract: S = K = 20, r = 3%, q = 4%, σ = 80%, T = 1.
func scenario(typ fdm.OptionType, style fdm.ExerciseStyle) fdm.Contract {
	return fdm.Contract{
		Spot:       20,
		Strike:     20,
		Rate:       0.03,
		Dividend:   0.04,
		Volatility: 0.8,
		Expiry:     1,
		Type:       typ,
		Style:      style,
	}
}

// scenarioGrid gives M = 101 and N = 257, w = 0.5.
var scenarioGrid = fdm.Discretization{DX: 0.05, DTau: 0.00125}

var allSchemes = []fdm.Scheme{fdm.SchemeExplicit, fdm.SchemeImplicit, fdm.SchemeCrankNicolson}

func closedForm(t *testing.T, c fdm.Contract) float64 {
	t.Helper()
	v, err := analytic.ClosedForm(c.Spot, c.Strike, c.Rate, c.Dividend, c.Volatility, c.Expiry, c.Type.Sign())
	require.NoError(t, err)

	return v
}

// countingObserver records every callback.
type countingObserver struct {
	mu       sync.Mutex
	pricings int
	solves   map[string]int
	sweeps   int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{solves: map[string]int{}}
}

func (o *countingObserver) ObservePricing(fdm.Scheme, string, fdm.ExerciseStyle, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pricings++
}

func (o *countingObserver) ObserveSolve(solver string, st tridiag.Stats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.solves[solver]++
	o.sweeps += st.Sweeps
}
