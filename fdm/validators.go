// SPDX-License-Identifier: MIT

package fdm

import "math"

// ValidateContract checks every field of c and returns the first violated
// sentinel, in field order. Spot is validated even though the engine reports
// the at-the-money price.
func ValidateContract(c Contract) error {
	switch {
	case !finitePositive(c.Spot):
		return ErrBadSpot
	case !finitePositive(c.Strike):
		return ErrBadStrike
	case !finite(c.Rate), !finite(c.Dividend):
		return ErrBadRate
	case !finitePositive(c.Volatility):
		return ErrBadVolatility
	case !finitePositive(c.Expiry):
		return ErrBadExpiry
	case c.Type != Call && c.Type != Put:
		return ErrBadOptionType
	case c.Style != European && c.Style != American:
		return ErrBadExerciseStyle
	}

	return nil
}

// ValidateDiscretization checks that both steps are finite and positive.
func ValidateDiscretization(d Discretization) error {
	if !finitePositive(d.DX) || !finitePositive(d.DTau) {
		return ErrBadStep
	}

	return nil
}

func (s Scheme) valid() bool {
	return s == SchemeExplicit || s == SchemeImplicit || s == SchemeCrankNicolson
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePositive(v float64) bool {
	return finite(v) && v > 0
}
