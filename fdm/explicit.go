// SPDX-License-Identifier: MIT

package fdm

import "github.com/katalvlaran/bsfdm/grid"

// explicitStepper is forward Euler: every interior cell of column j is a
// weighted average of three cells of column j−1. No linear solve.
type explicitStepper struct {
	stencil
	w float64
}

func newExplicit(dom *grid.Domain, c Contract) *explicitStepper {
	return &explicitStepper{stencil: newStencil(dom, c, dom.W), w: dom.W}
}

func (e *explicitStepper) step(j int, prev, next []float64) error {
	w := e.w
	for i := 1; i < len(next)-1; i++ {
		next[i] = prev[i] + w*(prev[i-1]-2*prev[i]+prev[i+1])
	}
	e.edges(j, next)
	e.project(next)

	return nil
}

func (e *explicitStepper) solverName() string { return "" }

func (e *explicitStepper) diagnostics(*Diagnostics) {}
