// SPDX-License-Identifier: MIT

package tridiag

// Solver solves A·x = b for a tridiagonal A.
//
// SolveTo writes x into dst, which must have length sys.Len(). dst may not
// alias rhs. Implementations may keep scratch buffers between calls.
type Solver interface {
	// Name is a short, stable identifier ("thomas", "sor") used in logs and metrics.
	Name() string

	// SolveTo solves sys·dst = rhs.
	SolveTo(dst []float64, sys *System, rhs []float64) (Stats, error)
}

// Stats describes how a single solve went.
type Stats struct {
	// Sweeps is 1 for a direct solve, the number of relaxation sweeps otherwise.
	Sweeps int

	// Delta is the L2 norm of the change made by the last sweep (0 for direct solves).
	Delta float64

	// Converged is false only when an iterative solver ran out of sweeps
	// before Delta dropped below its tolerance.
	Converged bool
}

// Solve allocates the output vector and delegates to s.SolveTo.
func Solve(s Solver, sys *System, rhs []float64) ([]float64, Stats, error) {
	if err := sys.Validate(); err != nil {
		return nil, Stats{}, err
	}
	x := make([]float64, sys.Len())
	st, err := s.SolveTo(x, sys, rhs)
	if err != nil {
		return nil, st, err
	}

	return x, st, nil
}

// validateSolve is the shared guard for SolveTo implementations:
// non-nil well-formed system, then rhs and dst of matching length.
func validateSolve(dst []float64, sys *System, rhs []float64) error {
	if err := sys.Validate(); err != nil {
		return err
	}
	n := sys.Len()
	if len(rhs) != n || len(dst) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// grow returns buf resliced to n, reallocating only when capacity is short.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}
