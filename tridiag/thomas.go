// SPDX-License-Identifier: MIT

package tridiag

// Thomas is the direct tridiagonal solver (Thomas algorithm).
//
// Algorithm:
//  1. Forward sweep: d'[0] = d[0], b'[0] = b[0];
//     for i = 1..n-1: m = sub[i]/d'[i-1], d'[i] = d[i] - m·super[i-1], b'[i] = b[i] - m·b'[i-1].
//  2. Back substitution: x[n-1] = b'[n-1]/d'[n-1];
//     for i = n-2..0: x[i] = (b'[i] - super[i]·x[i+1]) / d'[i].
//
// Complexity: O(n) time, O(n) scratch reused across calls.
//
// The zero value is ready to use.
type Thomas struct {
	diag []float64 // modified main diagonal d'
	rhs  []float64 // modified right-hand side b'
}

// NewThomas returns a Thomas solver with no preallocated scratch.
func NewThomas() *Thomas {
	return &Thomas{}
}

// Name implements Solver.
func (t *Thomas) Name() string { return "thomas" }

// SolveTo implements Solver.
// Returns ErrSingular when a pivot is exactly zero; for diagonally dominant
// systems that cannot happen.
func (t *Thomas) SolveTo(dst []float64, sys *System, rhs []float64) (Stats, error) {
	// Stage 1: validate shapes.
	if err := validateSolve(dst, sys, rhs); err != nil {
		return Stats{}, solverErrorf(opThomas, err)
	}
	n := sys.Len()
	t.diag = grow(t.diag, n)
	t.rhs = grow(t.rhs, n)

	// Stage 2: forward elimination.
	t.diag[0] = sys.Diag[0]
	t.rhs[0] = rhs[0]
	if t.diag[0] == 0 {
		return Stats{}, solverErrorf(opThomas, ErrSingular)
	}
	var m float64
	for i := 1; i < n; i++ {
		m = sys.Sub[i] / t.diag[i-1]
		t.diag[i] = sys.Diag[i] - m*sys.Super[i-1]
		t.rhs[i] = rhs[i] - m*t.rhs[i-1]
		if t.diag[i] == 0 {
			return Stats{}, solverErrorf(opThomas, ErrSingular)
		}
	}

	// Stage 3: back substitution.
	dst[n-1] = t.rhs[n-1] / t.diag[n-1]
	for i := n - 2; i >= 0; i-- {
		dst[i] = (t.rhs[i] - sys.Super[i]*dst[i+1]) / t.diag[i]
	}

	return Stats{Sweeps: 1, Converged: true}, nil
}
