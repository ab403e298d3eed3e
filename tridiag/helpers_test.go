// SPDX-License-Identifier: MIT
// Package tridiag_test contains shared fixtures for solver tests.

package tridiag_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bsfdm/tridiag"
)

// heatSystem builds the n×n system used by an implicit-type time step:
// identity rows at both ends, diag on the interior, off on both neighbours.
func heatSystem(t *testing.T, n int, diag, off float64) *tridiag.System {
	t.Helper()
	sys, err := tridiag.NewSystem(n)
	require.NoError(t, err)
	require.NoError(t, sys.SetRow(0, 0, 1, 0))
	for i := 1; i < n-1; i++ {
		require.NoError(t, sys.SetRow(i, off, diag, off))
	}
	require.NoError(t, sys.SetRow(n-1, 0, 1, 0))

	return sys
}

// smoothRHS returns a deterministic payoff-like right-hand side.
func smoothRHS(n int) []float64 {
	b := make([]float64, n)
	for i := range b {
		x := -2.5 + 5*float64(i)/float64(n-1)
		b[i] = math.Max(math.Exp(0.5*x)-math.Exp(-0.5*x), 0)
	}
	b[0] = 0
	b[n-1] = 1.75

	return b
}

// denseSolve solves sys·x = b through gonum's LU as an independent reference.
func denseSolve(t *testing.T, sys *tridiag.System, b []float64) []float64 {
	t.Helper()
	n := sys.Len()
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, sys.Diag[i])
		if i > 0 {
			a.Set(i, i-1, sys.Sub[i])
		}
		if i < n-1 {
			a.Set(i, i+1, sys.Super[i])
		}
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(a, mat.NewVecDense(n, append([]float64(nil), b...))))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}
