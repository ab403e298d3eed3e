// SPDX-License-Identifier: MIT
// Package fdm: sentinel error set.
//
// Every parameter sentinel wraps ErrInvalidParameter, so callers can either
// match the precise cause or the whole class:
//
//	errors.Is(err, fdm.ErrBadStrike)        // precise
//	errors.Is(err, fdm.ErrInvalidParameter) // any rejected input

package fdm

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the class of every input rejected before allocation.
var ErrInvalidParameter = errors.New("fdm: invalid parameter")

var (
	// ErrBadSpot indicates S <= 0 or non-finite.
	ErrBadSpot = fmt.Errorf("%w: spot must be finite and > 0", ErrInvalidParameter)

	// ErrBadStrike indicates K <= 0 or non-finite.
	ErrBadStrike = fmt.Errorf("%w: strike must be finite and > 0", ErrInvalidParameter)

	// ErrBadRate indicates a non-finite rate or dividend yield.
	ErrBadRate = fmt.Errorf("%w: rate and dividend must be finite", ErrInvalidParameter)

	// ErrBadVolatility indicates σ <= 0 or non-finite.
	ErrBadVolatility = fmt.Errorf("%w: volatility must be finite and > 0", ErrInvalidParameter)

	// ErrBadExpiry indicates T <= 0 or non-finite.
	ErrBadExpiry = fmt.Errorf("%w: expiry must be finite and > 0", ErrInvalidParameter)

	// ErrBadStep indicates dx or dτ <= 0 or non-finite.
	ErrBadStep = fmt.Errorf("%w: dx and dtau must be finite and > 0", ErrInvalidParameter)

	// ErrBadOptionType indicates a type other than Call or Put.
	ErrBadOptionType = fmt.Errorf("%w: unknown option type", ErrInvalidParameter)

	// ErrBadExerciseStyle indicates a style other than European or American.
	ErrBadExerciseStyle = fmt.Errorf("%w: unknown exercise style", ErrInvalidParameter)

	// ErrUnknownScheme indicates a Scheme value outside SchemeExplicit..SchemeCrankNicolson.
	ErrUnknownScheme = fmt.Errorf("%w: unknown scheme", ErrInvalidParameter)

	// ErrUnknownSolver indicates a SolverKind other than SolverThomas or SolverSOR.
	ErrUnknownSolver = fmt.Errorf("%w: unknown solver", ErrInvalidParameter)

	// ErrGridTooSmall indicates that dx or dτ leave fewer than 3 space points
	// or 2 time points.
	ErrGridTooSmall = fmt.Errorf("%w: grid has no interior point", ErrInvalidParameter)

	// ErrUnstable is returned only under WithStrictStability, when the
	// explicit scheme is asked to run with w > 0.5.
	ErrUnstable = errors.New("fdm: explicit scheme unstable (w > 0.5)")
)

// Operation tags for uniform error wrapping.
const (
	opSolve    = "Solve"
	opExtract  = "Extract"
	opValidate = "Validate"
)

// fdmErrorf wraps err with an operation tag, preserving it for errors.Is.
func fdmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
