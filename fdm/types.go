// SPDX-License-Identifier: MIT

package fdm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bsfdm/grid"
)

// OptionType selects the payoff direction. Its value is the payoff sign.
type OptionType int

const (
	// Call pays max(S − K, 0).
	Call OptionType = 1

	// Put pays max(K − S, 0).
	Put OptionType = -1
)

// Sign returns +1 for calls and −1 for puts.
func (o OptionType) Sign() float64 { return float64(o) }

func (o OptionType) String() string {
	switch o {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("OptionType(%d)", int(o))
	}
}

// ParseOptionType accepts "call"/"c" and "put"/"p", case-insensitively.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadOptionType)
}

// ExerciseStyle selects European (expiry only) or American (any time) exercise.
type ExerciseStyle int

const (
	// European contracts exercise only at expiry.
	European ExerciseStyle = iota

	// American contracts may exercise early; see the projection in the package doc.
	American
)

func (e ExerciseStyle) String() string {
	switch e {
	case European:
		return "european"
	case American:
		return "american"
	default:
		return fmt.Sprintf("ExerciseStyle(%d)", int(e))
	}
}

// ParseExerciseStyle accepts "european"/"eur"/"e" and "american"/"am"/"a".
func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "european", "eur", "e":
		return European, nil
	case "american", "am", "a":
		return American, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadExerciseStyle)
}

// Scheme selects the time-stepping scheme.
type Scheme int

const (
	// SchemeExplicit is forward Euler in time. Conditionally stable.
	SchemeExplicit Scheme = iota

	// SchemeImplicit is backward Euler in time. Unconditionally stable.
	SchemeImplicit

	// SchemeCrankNicolson averages the two. Second order in time.
	SchemeCrankNicolson
)

func (s Scheme) String() string {
	switch s {
	case SchemeExplicit:
		return "explicit"
	case SchemeImplicit:
		return "implicit"
	case SchemeCrankNicolson:
		return "crank-nicolson"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme accepts "explicit", "implicit", "crank-nicolson" and "cn".
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "explicit", "ex":
		return SchemeExplicit, nil
	case "implicit", "im":
		return SchemeImplicit, nil
	case "crank-nicolson", "cranknicolson", "cn":
		return SchemeCrankNicolson, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownScheme)
}

// SolverKind selects the tridiagonal solver used by Implicit and CrankNicolson.
type SolverKind int

const (
	// SolverThomas is the direct O(n) elimination.
	SolverThomas SolverKind = iota

	// SolverSOR is successive over-relaxation with a bounded sweep budget.
	SolverSOR
)

func (k SolverKind) String() string {
	switch k {
	case SolverThomas:
		return "thomas"
	case SolverSOR:
		return "sor"
	default:
		return fmt.Sprintf("SolverKind(%d)", int(k))
	}
}

// ParseSolverKind accepts "thomas" and "sor".
func ParseSolverKind(s string) (SolverKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thomas":
		return SolverThomas, nil
	case "sor":
		return SolverSOR, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownSolver)
}

// Contract is the immutable input of one pricing call.
type Contract struct {
	Spot       float64 // S > 0
	Strike     float64 // K > 0
	Rate       float64 // r, continuously compounded
	Dividend   float64 // q, continuous dividend yield
	Volatility float64 // σ > 0
	Expiry     float64 // T > 0, in years
	Type       OptionType
	Style      ExerciseStyle
}

// Discretization holds the step sizes in log-moneyness and transformed time.
type Discretization struct {
	DX   float64 // > 0
	DTau float64 // > 0
}

// ExplicitStabilityLimit is the largest w = dτ/dx² for which the explicit
// scheme is stable.
const ExplicitStabilityLimit = 0.5

// W returns the stencil weight dτ/dx².
func (d Discretization) W() float64 {
	return d.DTau / (d.DX * d.DX)
}

// Diagnostics reports numerical-quality facts about a finished run.
// None of them turns a valid run into an error.
type Diagnostics struct {
	W            float64 // stencil weight dτ/dx²
	Stable       bool    // false only for Explicit with W > 0.5
	Steps        int     // time steps taken, N−1
	Sweeps       int     // total solver sweeps (SOR) or solves (Thomas)
	NonConverged int     // SOR solves that exhausted their budget
}

// Result is the full outcome of Solve.
type Result struct {
	Price       float64
	Scheme      Scheme
	Solver      string // "thomas", "sor", or "" for Explicit
	Domain      *grid.Domain
	Grid        *grid.ValueGrid
	Diagnostics Diagnostics
}
