// SPDX-License-Identifier: MIT

package grid

import "math"

// Truncated log-moneyness window, a finite proxy for S ∈ (0, ∞).
const (
	XMin = -2.5
	XMax = 2.5
)

// Minimum axis sizes: one interior space point and one time step.
const (
	MinSpacePoints = 3
	MinTimePoints  = 2
)

// sizeGuard absorbs representation error in span/step before flooring, so that
// 5/0.05 = 99.99999999999999 counts 100 steps.
const sizeGuard = 1e-9

// Spatial is the uniform log-moneyness axis x_i = Min + i·Step, i = 0..M-1.
type Spatial struct {
	Min, Max float64
	Step     float64
	X        []float64
}

// Temporal is the uniform transformed-time axis t_j = j·Step, j = 0..N-1,
// covering [0, ½σ²T].
type Temporal struct {
	Max  float64
	Step float64
	T    []float64
}

// NewSpatial sizes the [XMin, XMax] axis: M = floor((XMax−XMin)/dx) + 1.
// Errors: ErrBadStep, ErrTooFewPoints (M < 3).
// Complexity: O(M).
func NewSpatial(dx float64) (*Spatial, error) {
	// Stage 1: validate before sizing.
	if !finitePositive(dx) {
		return nil, gridErrorf(opSpatial, ErrBadStep)
	}
	m, ok := count(XMax-XMin, dx)
	if !ok || m < MinSpacePoints {
		return nil, gridErrorf(opSpatial, ErrTooFewPoints)
	}

	// Stage 2: fill the axis.
	x := make([]float64, m)
	for i := range x {
		x[i] = XMin + float64(i)*dx
	}

	return &Spatial{Min: XMin, Max: XMax, Step: dx, X: x}, nil
}

// NewTemporal sizes the transformed-time axis: N = floor(½σ²T/dτ) + 1.
// Errors: ErrBadVolatility, ErrBadExpiry, ErrBadStep, ErrTooFewPoints (N < 2).
// Complexity: O(N).
func NewTemporal(sigma, expiry, dtau float64) (*Temporal, error) {
	if !finitePositive(sigma) {
		return nil, gridErrorf(opTemporal, ErrBadVolatility)
	}
	if !finitePositive(expiry) {
		return nil, gridErrorf(opTemporal, ErrBadExpiry)
	}
	if !finitePositive(dtau) {
		return nil, gridErrorf(opTemporal, ErrBadStep)
	}
	tMax := 0.5 * sigma * sigma * expiry
	n, ok := count(tMax, dtau)
	if !ok || n < MinTimePoints {
		return nil, gridErrorf(opTemporal, ErrTooFewPoints)
	}

	t := make([]float64, n)
	for j := range t {
		t[j] = float64(j) * dtau
	}

	return &Temporal{Max: tMax, Step: dtau, T: t}, nil
}

// Len returns M.
func (s *Spatial) Len() int { return len(s.X) }

// ATM returns the index of the at-the-money point, M/2 (integer division).
func (s *Spatial) ATM() int { return len(s.X) / 2 }

// Len returns N.
func (t *Temporal) Len() int { return len(t.T) }

// Last returns the final time index N−1.
func (t *Temporal) Last() int { return len(t.T) - 1 }

// count returns floor(span/step)+1, rejecting sizes that do not fit an int.
func count(span, step float64) (int, bool) {
	steps := math.Floor(span/step + sizeGuard)
	if math.IsNaN(steps) || steps < 0 || steps > math.MaxInt32 {
		return 0, false
	}

	return int(steps) + 1, true
}
