// SPDX-License-Identifier: MIT

package tridiag

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Defaults for SOROptions. These reproduce the reference pricing tables.
const (
	// DefaultRelaxation is the over-relaxation factor ω.
	DefaultRelaxation = 1.2

	// DefaultMaxIterations bounds the number of sweeps per solve.
	DefaultMaxIterations = 15

	// DefaultTolerance is the stop threshold on the L2 norm of one sweep's change.
	DefaultTolerance = 1e-6
)

// SOROptions configures the relaxation solver.
//
// Fields:
//   - Relaxation    — ω in (0, 2); ω = 1 is plain Gauss–Seidel, ω > 1 over-relaxes.
//   - MaxIterations — sweep budget (>= 1). Exhausting it is not an error.
//   - Tolerance     — stop once ‖x_k − x_{k−1}‖₂ < Tolerance (> 0).
type SOROptions struct {
	Relaxation    float64
	MaxIterations int
	Tolerance     float64
}

// DefaultSOROptions returns ω = 1.2, 15 sweeps, tolerance 1e-6.
func DefaultSOROptions() SOROptions {
	return SOROptions{
		Relaxation:    DefaultRelaxation,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Validate returns ErrBadOptions for out-of-range fields.
func (o SOROptions) Validate() error {
	if !(o.Relaxation > 0 && o.Relaxation < 2) {
		return ErrBadOptions
	}
	if o.MaxIterations < 1 {
		return ErrBadOptions
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return ErrBadOptions
	}

	return nil
}

// SOR is the successive over-relaxation solver.
//
// Each solve starts from x = 0. A sweep visits rows 0..n-1 in order and
// updates x[i] in place from the newest x[i-1] and the previous x[i+1]:
//
//	g    = (b[i] - sub[i]·x[i-1] - super[i]·x[i+1]) / diag[i]
//	x[i] = (1-ω)·x[i] + ω·g
//
// After a complete sweep the L2 norm of the change is compared with the
// tolerance. When the sweep budget runs out first, the last iterate is
// returned with Stats.Converged = false and a nil error.
type SOR struct {
	opts SOROptions
	prev []float64 // iterate before the current sweep
}

// NewSOR validates opts and returns a solver.
func NewSOR(opts SOROptions) (*SOR, error) {
	if err := opts.Validate(); err != nil {
		return nil, solverErrorf(opSOR, err)
	}

	return &SOR{opts: opts}, nil
}

// Name implements Solver.
func (s *SOR) Name() string { return "sor" }

// Options returns the effective configuration.
func (s *SOR) Options() SOROptions { return s.opts }

// SolveTo implements Solver.
// Complexity: O(n·sweeps) time, O(n) scratch.
func (s *SOR) SolveTo(dst []float64, sys *System, rhs []float64) (Stats, error) {
	// Stage 1: validate shapes and seed x = 0.
	if err := validateSolve(dst, sys, rhs); err != nil {
		return Stats{}, solverErrorf(opSOR, err)
	}
	n := sys.Len()
	for i := range dst {
		if sys.Diag[i] == 0 {
			return Stats{}, solverErrorf(opSOR, ErrSingular)
		}
		dst[i] = 0
	}
	s.prev = grow(s.prev, n)

	// Stage 2: relaxation sweeps.
	omega := s.opts.Relaxation
	var (
		st Stats
		g  float64
	)
	for st.Sweeps < s.opts.MaxIterations {
		copy(s.prev, dst)
		for i := 0; i < n; i++ {
			g = rhs[i]
			if i > 0 {
				g -= sys.Sub[i] * dst[i-1] // already updated this sweep
			}
			if i < n-1 {
				g -= sys.Super[i] * dst[i+1] // still from the previous sweep
			}
			g /= sys.Diag[i]
			dst[i] = (1-omega)*dst[i] + omega*g
		}
		st.Sweeps++

		// Stage 3: convergence check on the completed sweep.
		st.Delta = floats.Distance(dst, s.prev, 2)
		if st.Delta < s.opts.Tolerance {
			st.Converged = true
			break
		}
	}

	return st, nil
}
