// SPDX-License-Identifier: MIT

package fdm

import (
	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// newCrankNicolson builds the Crank–Nicolson system: diag 1+w, off −½w, with
// the explicit half-step y_i + w(½y_i−1 − y_i + ½y_i+1) as right-hand side.
// Edge values and the exercise floor are scaled by ½w.
func newCrankNicolson(dom *grid.Domain, c Contract, solver tridiag.Solver, obs Observer) (*linearStepper, error) {
	w := dom.W
	return newLinear(dom, c, solver, obs, 0.5, 0.5*w, 1+w, -0.5*w)
}
