// SPDX-License-Identifier: MIT

package fdm

import (
	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// linearStepper covers Implicit and Crank–Nicolson. Both solve
//
//	diag·y_i − off·(y_i−1 + y_i+1) = rhs_i     (interior)
//	y_0 = lower, y_M−1 = upper                 (identity edge rows)
//
// once per step; they differ in the coefficients and in how much of column
// j−1 enters the right-hand side (theta = 0 implicit, ½ Crank–Nicolson).
type linearStepper struct {
	stencil
	theta    float64 // explicit share of the stencil in the rhs
	w        float64
	sys      *tridiag.System
	rhs      []float64
	solver   tridiag.Solver
	observer Observer

	sweeps       int
	nonConverged int
}

// newImplicit builds the backward-Euler system: diag 1+2w, off −w.
func newImplicit(dom *grid.Domain, c Contract, solver tridiag.Solver, obs Observer) (*linearStepper, error) {
	w := dom.W
	return newLinear(dom, c, solver, obs, 0, w, 1+2*w, -w)
}

func newLinear(dom *grid.Domain, c Contract, solver tridiag.Solver, obs Observer, theta, wFactor, diag, off float64) (*linearStepper, error) {
	m := dom.Space.Len()
	sys, err := tridiag.NewSystem(m)
	if err != nil {
		return nil, err
	}
	if err = sys.SetRow(0, 0, 1, 0); err != nil {
		return nil, err
	}
	for i := 1; i < m-1; i++ {
		if err = sys.SetRow(i, off, diag, off); err != nil {
			return nil, err
		}
	}
	if err = sys.SetRow(m-1, 0, 1, 0); err != nil {
		return nil, err
	}

	return &linearStepper{
		stencil:  newStencil(dom, c, wFactor),
		theta:    theta,
		w:        dom.W,
		sys:      sys,
		rhs:      make([]float64, m),
		solver:   solver,
		observer: obs,
	}, nil
}

func (l *linearStepper) step(j int, prev, next []float64) error {
	// Stage 1: right-hand side. Edge rows carry the analytic values so the
	// identity rows pass them through.
	m := len(next)
	l.edges(j, l.rhs)
	tw := l.theta * l.w
	for i := 1; i < m-1; i++ {
		l.rhs[i] = prev[i] + tw*(prev[i-1]-2*prev[i]+prev[i+1])
	}

	// Stage 2: solve for the continuation values.
	st, err := l.solver.SolveTo(next, l.sys, l.rhs)
	if err != nil {
		return err
	}
	l.sweeps += st.Sweeps
	if !st.Converged {
		l.nonConverged++
	}
	l.observer.ObserveSolve(l.solver.Name(), st)

	// Stage 3: pin the edges (an unconverged SOR iterate may not reproduce
	// them exactly) and apply the exercise clamp.
	next[0], next[m-1] = l.rhs[0], l.rhs[m-1]
	l.project(next)

	return nil
}

func (l *linearStepper) solverName() string { return l.solver.Name() }

func (l *linearStepper) diagnostics(d *Diagnostics) {
	d.Sweeps = l.sweeps
	d.NonConverged = l.nonConverged
}
