// SPDX-License-Identifier: MIT

package fdm

import (
	"math"

	"github.com/katalvlaran/bsfdm/grid"
)

// stepper advances the value grid by one column: next is column j, prev is
// column j−1. Nothing else is read, which is what allows RollingColumns.
type stepper interface {
	step(j int, prev, next []float64) error
	solverName() string
	diagnostics(d *Diagnostics)
}

// stencil carries what every scheme shares: the domain, the payoff sign,
// the boundary factor and the precomputed exercise floor.
type stencil struct {
	dom      *grid.Domain
	sign     float64
	wFactor  float64   // w for Explicit/Implicit, ½w for Crank–Nicolson
	exercise []float64 // wFactor·Intrinsic(x_i); nil for European
}

func newStencil(dom *grid.Domain, c Contract, wFactor float64) stencil {
	s := stencil{dom: dom, sign: c.Type.Sign(), wFactor: wFactor}
	if c.Style == American {
		s.exercise = make([]float64, dom.Space.Len())
		for i, x := range dom.Space.X {
			s.exercise[i] = wFactor * dom.Transform.Intrinsic(x, s.sign)
		}
	}

	return s
}

// edges writes the analytic boundary values of column j into rows 0 and M−1.
func (s *stencil) edges(j int, col []float64) {
	col[0], col[len(col)-1] = s.dom.Edges(s.sign, j, s.wFactor)
}

// project applies the early-exercise clamp to interior cells.
// Edge rows already carry their analytic values and are left untouched.
func (s *stencil) project(col []float64) {
	if s.exercise == nil {
		return
	}
	for i := 1; i < len(col)-1; i++ {
		col[i] = math.Max(col[i], s.exercise[i])
	}
}
