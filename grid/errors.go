// SPDX-License-Identifier: MIT
// Package grid: sentinel error set. Constructors validate before sizing or
// allocating anything.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStep is returned for a non-positive or non-finite dx or dτ.
	ErrBadStep = errors.New("grid: step must be finite and > 0")

	// ErrBadVolatility is returned for σ <= 0; the transform divides by σ².
	ErrBadVolatility = errors.New("grid: volatility must be finite and > 0")

	// ErrBadExpiry is returned for a non-positive or non-finite expiry.
	ErrBadExpiry = errors.New("grid: expiry must be finite and > 0")

	// ErrBadRate is returned for a non-finite rate or dividend yield.
	ErrBadRate = errors.New("grid: rate and dividend must be finite")

	// ErrTooFewPoints is returned when M < 3 or N < 2: no interior point to solve.
	ErrTooFewPoints = errors.New("grid: too few grid points")

	// ErrOutOfRange indicates a (row, column) index outside the value grid.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrColumnEvicted is returned when reading a column that RollingColumns
	// mode has already overwritten.
	ErrColumnEvicted = errors.New("grid: column no longer held")

	// ErrBadMode indicates an unknown MemoryMode.
	ErrBadMode = errors.New("grid: unknown memory mode")
)

// Operation tags for uniform error wrapping.
const (
	opTransform = "NewTransform"
	opSpatial   = "NewSpatial"
	opTemporal  = "NewTemporal"
	opDomain    = "NewDomain"
	opValueGrid = "NewValueGrid"
)

// gridErrorf wraps err with an operation tag, preserving it for errors.Is.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
