// SPDX-License-Identifier: MIT
// Package tridiag: sentinel error set.
// Callers match these with errors.Is; solver entry points wrap them with an
// operation tag ("Thomas: ...", "SOR: ...").

package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSystem indicates that a nil *System was passed to a solver.
	ErrNilSystem = errors.New("tridiag: nil system")

	// ErrBadSize is returned when a system of size n < 1 is requested.
	ErrBadSize = errors.New("tridiag: size must be > 0")

	// ErrDimensionMismatch indicates coefficient, right-hand side or output
	// slices whose lengths disagree with the system size.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrSingular is returned when elimination meets a zero pivot, which can
	// only happen for a system that is not diagonally dominant.
	ErrSingular = errors.New("tridiag: zero pivot")

	// ErrBadOptions signals an out-of-range relaxation factor, sweep budget or
	// tolerance.
	ErrBadOptions = errors.New("tridiag: invalid solver options")
)

// Operation tags for uniform error wrapping.
const (
	opThomas     = "Thomas"
	opSOR        = "SOR"
	opFromPacked = "FromPacked"
	opSetRow     = "SetRow"
	opMulVec     = "MulVec"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
