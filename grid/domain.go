// SPDX-License-Identifier: MIT

package grid

// Domain bundles everything a scheme needs before stepping: the transform,
// both axes and the stencil weight w = dτ/dx².
type Domain struct {
	Transform Transform
	Space     *Spatial
	Time      *Temporal
	W         float64
}

// NewDomain validates the market and discretization inputs, then builds the
// transform and both axes. Nothing is sized before validation passes.
func NewDomain(r, q, sigma, expiry, dx, dtau float64) (*Domain, error) {
	// Stage 1: validate every scalar before any allocation.
	switch {
	case !finitePositive(sigma):
		return nil, gridErrorf(opDomain, ErrBadVolatility)
	case !finitePositive(expiry):
		return nil, gridErrorf(opDomain, ErrBadExpiry)
	case !finitePositive(dx), !finitePositive(dtau):
		return nil, gridErrorf(opDomain, ErrBadStep)
	}

	// Stage 2: derive the transform and size the axes.
	tr, err := NewTransform(r, q, sigma)
	if err != nil {
		return nil, gridErrorf(opDomain, err)
	}
	space, err := NewSpatial(dx)
	if err != nil {
		return nil, gridErrorf(opDomain, err)
	}
	tm, err := NewTemporal(sigma, expiry, dtau)
	if err != nil {
		return nil, gridErrorf(opDomain, err)
	}

	return &Domain{Transform: tr, Space: space, Time: tm, W: dtau / (dx * dx)}, nil
}

// NewValueGrid allocates an M×N grid sized to the domain.
func (d *Domain) NewValueGrid(mode MemoryMode) (*ValueGrid, error) {
	return NewValueGrid(d.Space.Len(), d.Time.Len(), mode)
}

// Seed writes the terminal payoff into column 0.
func (d *Domain) Seed(g *ValueGrid, sign float64) error {
	col, err := g.Column(0)
	if err != nil {
		return err
	}
	for i, x := range d.Space.X {
		col[i] = d.Transform.Payoff(x, sign)
	}

	return nil
}

// Edges returns the analytic lower and upper boundary values at time index j.
func (d *Domain) Edges(sign float64, j int, wFactor float64) (lower, upper float64) {
	t := d.Time.T[j]
	lower = d.Transform.Lower(sign, d.Space.X[0], t, wFactor)
	upper = d.Transform.Upper(sign, d.Space.X[d.Space.Len()-1], t, wFactor)

	return lower, upper
}
