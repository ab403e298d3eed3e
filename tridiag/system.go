// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// System is an n×n tridiagonal matrix stored as three diagonals.
//
// Row i reads Sub[i]·x[i-1] + Diag[i]·x[i] + Super[i]·x[i+1].
// Sub[0] and Super[n-1] are outside the matrix and never read.
type System struct {
	Sub   []float64 // sub-diagonal, Sub[0] unused
	Diag  []float64 // main diagonal
	Super []float64 // super-diagonal, Super[n-1] unused
}

// NewSystem allocates a zeroed n×n system.
// Returns ErrBadSize for n < 1.
// Complexity: O(n) time and memory.
func NewSystem(n int) (*System, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	return &System{
		Sub:   make([]float64, n),
		Diag:  make([]float64, n),
		Super: make([]float64, n),
	}, nil
}

// FromPacked converts the legacy "3 doubles per row" layout into a System.
// The packed slice must have length 3n with a[3i] = sub, a[3i+1] = main,
// a[3i+2] = super for row i.
// Complexity: O(n).
func FromPacked(a []float64) (*System, error) {
	// Stage 1: validate the packed length.
	if len(a) == 0 || len(a)%3 != 0 {
		return nil, solverErrorf(opFromPacked, ErrDimensionMismatch)
	}
	n := len(a) / 3

	// Stage 2: unpack row by row.
	sys, err := NewSystem(n)
	if err != nil {
		return nil, solverErrorf(opFromPacked, err)
	}
	for i := 0; i < n; i++ {
		sys.Sub[i] = a[3*i]
		sys.Diag[i] = a[3*i+1]
		sys.Super[i] = a[3*i+2]
	}
	sys.Sub[0], sys.Super[n-1] = 0, 0 // outside the matrix

	return sys, nil
}

// Len returns the system size n.
func (s *System) Len() int {
	return len(s.Diag)
}

// SetRow writes the three coefficients of row i.
// Coefficients that fall outside the matrix (sub on row 0, super on row n-1)
// are stored as zero.
func (s *System) SetRow(i int, sub, diag, super float64) error {
	n := s.Len()
	if i < 0 || i >= n {
		return solverErrorf(opSetRow, fmt.Errorf("row %d of %d: %w", i, n, ErrDimensionMismatch))
	}
	if i == 0 {
		sub = 0
	}
	if i == n-1 {
		super = 0
	}
	s.Sub[i], s.Diag[i], s.Super[i] = sub, diag, super

	return nil
}

// Validate checks that all three diagonals share the same non-zero length.
func (s *System) Validate() error {
	if s == nil {
		return ErrNilSystem
	}
	n := len(s.Diag)
	if n == 0 {
		return ErrBadSize
	}
	if len(s.Sub) != n || len(s.Super) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// DiagonallyDominant reports whether |Diag[i]| >= |Sub[i]| + |Super[i]| on
// every row, with strict inequality on at least one row. That is the
// precondition under which Thomas never meets a zero pivot.
// Complexity: O(n).
func (s *System) DiagonallyDominant() bool {
	if s.Validate() != nil {
		return false
	}
	n := s.Len()
	strict := false
	for i := 0; i < n; i++ {
		off := 0.0
		if i > 0 {
			off += math.Abs(s.Sub[i])
		}
		if i < n-1 {
			off += math.Abs(s.Super[i])
		}
		d := math.Abs(s.Diag[i])
		if d < off {
			return false
		}
		if d > off {
			strict = true
		}
	}

	return strict
}

// MulVec returns A·x. Used to measure residuals ‖A·x − b‖.
// Complexity: O(n).
func (s *System) MulVec(x []float64) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, solverErrorf(opMulVec, err)
	}
	n := s.Len()
	if len(x) != n {
		return nil, solverErrorf(opMulVec, ErrDimensionMismatch)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Diag[i] * x[i]
		if i > 0 {
			v += s.Sub[i] * x[i-1]
		}
		if i < n-1 {
			v += s.Super[i] * x[i+1]
		}
		out[i] = v
	}

	return out, nil
}

// Residual returns ‖A·x − b‖₂.
func (s *System) Residual(x, b []float64) (float64, error) {
	ax, err := s.MulVec(x)
	if err != nil {
		return 0, err
	}
	if len(b) != len(ax) {
		return 0, solverErrorf(opMulVec, ErrDimensionMismatch)
	}

	return floats.Distance(ax, b, 2), nil
}
