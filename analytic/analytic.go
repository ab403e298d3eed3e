// SPDX-License-Identifier: MIT

package analytic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadInput is returned when S, K, σ or T is not finite and positive, when
// r or q is not finite, or when sign is neither +1 nor −1.
var ErrBadInput = errors.New("analytic: invalid input")

// ClosedForm returns the Black–Scholes price of a European option.
// sign is +1 for a call and −1 for a put.
func ClosedForm(spot, strike, rate, dividend, sigma, expiry, sign float64) (float64, error) {
	if err := validate(spot, strike, rate, dividend, sigma, expiry); err != nil {
		return 0, err
	}
	if sign != 1 && sign != -1 {
		return 0, fmt.Errorf("ClosedForm: sign %v: %w", sign, ErrBadInput)
	}

	sqrtT := math.Sqrt(expiry)
	d1 := (math.Log(spot/strike) + (rate-dividend+0.5*sigma*sigma)*expiry) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT
	fwdS := spot * math.Exp(-dividend*expiry)
	fwdK := strike * math.Exp(-rate*expiry)

	n := distuv.UnitNormal

	return sign * (fwdS*n.CDF(sign*d1) - fwdK*n.CDF(sign*d2)), nil
}

// Call is ClosedForm with sign +1.
func Call(spot, strike, rate, dividend, sigma, expiry float64) (float64, error) {
	return ClosedForm(spot, strike, rate, dividend, sigma, expiry, 1)
}

// Put is ClosedForm with sign −1.
func Put(spot, strike, rate, dividend, sigma, expiry float64) (float64, error) {
	return ClosedForm(spot, strike, rate, dividend, sigma, expiry, -1)
}

// Parity returns call − put as implied by put–call parity:
// S·e^(−qT) − K·e^(−rT). It does not validate its inputs.
func Parity(spot, strike, rate, dividend, expiry float64) float64 {
	return spot*math.Exp(-dividend*expiry) - strike*math.Exp(-rate*expiry)
}

func validate(spot, strike, rate, dividend, sigma, expiry float64) error {
	for _, v := range [...]float64{spot, strike, sigma, expiry} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("ClosedForm: %w", ErrBadInput)
		}
	}
	for _, v := range [...]float64{rate, dividend} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ClosedForm: %w", ErrBadInput)
		}
	}

	return nil
}
