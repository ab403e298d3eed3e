// SPDX-License-Identifier: MIT

package grid

import "math"

// Transform holds the scalars of the Black–Scholes → heat-equation change of
// variables. It is a pure function of (r, q, σ).
type Transform struct {
	RP    float64 // 2r/σ²
	QP    float64 // 2(r−q)/σ²
	Alpha float64 // −½(qp−1)

	// Beta is −¼(qp−1)² − rp. Some published tables write +rp, which scales
	// every price by exp(2rT) and no longer converges to the closed form.
	Beta float64
}

// NewTransform derives the transform scalars.
// Errors: ErrBadVolatility for σ <= 0, ErrBadRate for non-finite r or q.
func NewTransform(r, q, sigma float64) (Transform, error) {
	if !finitePositive(sigma) {
		return Transform{}, gridErrorf(opTransform, ErrBadVolatility)
	}
	if !finite(r) || !finite(q) {
		return Transform{}, gridErrorf(opTransform, ErrBadRate)
	}

	s2 := sigma * sigma
	rp := 2 * r / s2
	qp := 2 * (r - q) / s2

	return Transform{
		RP:    rp,
		QP:    qp,
		Alpha: -0.5 * (qp - 1),
		Beta:  -0.25*(qp-1)*(qp-1) - rp,
	}, nil
}

// Intrinsic is the transformed exercise value, unclamped:
// sign·(exp(½x(qp+1)) − exp(½x(qp−1))). sign is +1 for calls, −1 for puts.
func (tr Transform) Intrinsic(x, sign float64) float64 {
	return sign * (math.Exp(0.5*x*(tr.QP+1)) - math.Exp(0.5*x*(tr.QP-1)))
}

// Payoff is the transformed terminal payoff max(Intrinsic, 0). It is the
// same for European and American contracts.
func (tr Transform) Payoff(x, sign float64) float64 {
	return math.Max(tr.Intrinsic(x, sign), 0)
}

// Lower is the analytic value at the left edge x = xMin (deep out of the
// money for a call, deep in the money for a put) at transformed time t.
func (tr Transform) Lower(sign, xMin, t, wFactor float64) float64 {
	if sign > 0 {
		return 0
	}
	k := tr.QP - 1

	return wFactor * math.Exp(0.5*k*xMin+0.25*k*k*t)
}

// Upper is the analytic value at the right edge x = xMax.
func (tr Transform) Upper(sign, xMax, t, wFactor float64) float64 {
	if sign < 0 {
		return 0
	}
	k := tr.QP + 1

	return wFactor * math.Exp(0.5*k*xMax+0.25*k*k*t)
}

// Dollar maps a transformed value y at (x, t) back to an option price.
func (tr Transform) Dollar(y, strike, x, t float64) float64 {
	return y * strike * math.Exp(tr.Alpha*x+tr.Beta*t)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePositive(v float64) bool {
	return finite(v) && v > 0
}
