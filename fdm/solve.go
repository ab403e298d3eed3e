// SPDX-License-Identifier: MIT

package fdm

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// Solve prices c with the given scheme and returns the price together with
// the grid it was read from and run diagnostics.
//
// Errors (all before allocation unless noted):
//   - ErrInvalidParameter family: bad contract, steps, scheme or grid size.
//   - ErrUnstable: Explicit with w > 0.5 under WithStrictStability.
//   - tridiag.ErrBadOptions: invalid WithSOROptions values.
//   - tridiag.ErrSingular: zero pivot during a solve (cannot happen for valid inputs).
//
// Complexity: O(M·N) time. Memory O(M·N), or O(M) with grid.RollingColumns.
func Solve(scheme Scheme, c Contract, d Discretization, opts ...Option) (*Result, error) {
	start := time.Now()
	o := gatherOptions(opts...)

	// Stage 1: validate every input before sizing anything.
	if err := ValidateContract(c); err != nil {
		return nil, fdmErrorf(opValidate, err)
	}
	if err := ValidateDiscretization(d); err != nil {
		return nil, fdmErrorf(opValidate, err)
	}
	if !scheme.valid() {
		return nil, fdmErrorf(opValidate, ErrUnknownScheme)
	}
	w := d.W()
	stable := scheme != SchemeExplicit || w <= ExplicitStabilityLimit
	if !stable && o.strict {
		return nil, fdmErrorf(opValidate, ErrUnstable)
	}

	// Stage 2: build the domain and the scheme's stepper.
	dom, err := grid.NewDomain(c.Rate, c.Dividend, c.Volatility, c.Expiry, d.DX, d.DTau)
	if err != nil {
		if errors.Is(err, grid.ErrTooFewPoints) {
			return nil, fdmErrorf(opValidate, ErrGridTooSmall)
		}
		return nil, fdmErrorf(opValidate, err)
	}
	st, err := newStepper(scheme, dom, c, o)
	if err != nil {
		return nil, fdmErrorf(opSolve, err)
	}

	log := o.logger.With(
		zap.Stringer("scheme", scheme),
		zap.Stringer("type", c.Type),
		zap.Stringer("style", c.Style),
	)
	if !stable {
		log.Warn("explicit scheme above stability limit",
			zap.Float64("w", w), zap.Float64("limit", ExplicitStabilityLimit))
	}
	if c.Spot != c.Strike {
		log.Warn("price is quoted at the money; spot is ignored",
			zap.Float64("spot", c.Spot), zap.Float64("strike", c.Strike))
	}

	// Stage 3: seed the payoff and march j = 1..N−1.
	vg, err := dom.NewValueGrid(o.memory)
	if err != nil {
		return nil, fdmErrorf(opSolve, err)
	}
	if err = dom.Seed(vg, c.Type.Sign()); err != nil {
		return nil, fdmErrorf(opSolve, err)
	}
	for j := 1; j < vg.Cols(); j++ {
		prev, err := vg.Column(j - 1)
		if err != nil {
			return nil, fdmErrorf(opSolve, err)
		}
		next, err := vg.Column(j)
		if err != nil {
			return nil, fdmErrorf(opSolve, err)
		}
		if err = st.step(j, prev, next); err != nil {
			return nil, fdmErrorf(opSolve, err)
		}
	}

	// Stage 4: read the at-the-money price off the final column.
	price, err := Extract(vg, dom, c.Strike)
	if err != nil {
		return nil, err
	}

	diag := Diagnostics{W: w, Stable: stable, Steps: vg.Cols() - 1}
	st.diagnostics(&diag)
	elapsed := time.Since(start)
	o.observer.ObservePricing(scheme, st.solverName(), c.Style, elapsed)
	if diag.NonConverged > 0 {
		log.Debug("sor budget exhausted on some steps",
			zap.Int("non_converged", diag.NonConverged), zap.Int("steps", diag.Steps))
	}
	log.Debug("priced",
		zap.Float64("price", price),
		zap.Int("M", vg.Rows()),
		zap.Int("N", vg.Cols()),
		zap.Float64("w", w),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		Price:       price,
		Scheme:      scheme,
		Solver:      st.solverName(),
		Domain:      dom,
		Grid:        vg,
		Diagnostics: diag,
	}, nil
}

// Price is Solve reduced to the price.
func Price(scheme Scheme, c Contract, d Discretization, opts ...Option) (float64, error) {
	res, err := Solve(scheme, c, d, opts...)
	if err != nil {
		return 0, err
	}

	return res.Price, nil
}

// Explicit prices c with the forward-Euler scheme.
func Explicit(c Contract, d Discretization, opts ...Option) (float64, error) {
	return Price(SchemeExplicit, c, d, opts...)
}

// Implicit prices c with the backward-Euler scheme.
func Implicit(c Contract, d Discretization, opts ...Option) (float64, error) {
	return Price(SchemeImplicit, c, d, opts...)
}

// CrankNicolson prices c with the Crank–Nicolson scheme.
func CrankNicolson(c Contract, d Discretization, opts ...Option) (float64, error) {
	return Price(SchemeCrankNicolson, c, d, opts...)
}

// newStepper builds the stepper for scheme. The solver is only constructed
// for the linear schemes, so invalid SOR options are ignored by Explicit.
func newStepper(scheme Scheme, dom *grid.Domain, c Contract, o Options) (stepper, error) {
	if scheme == SchemeExplicit {
		return newExplicit(dom, c), nil
	}

	var solver tridiag.Solver
	switch o.solver {
	case SolverSOR:
		sor, err := tridiag.NewSOR(o.sor)
		if err != nil {
			return nil, err
		}
		solver = sor
	default:
		solver = tridiag.NewThomas()
	}

	if scheme == SchemeImplicit {
		return newImplicit(dom, c, solver, o.observer)
	}

	return newCrankNicolson(dom, c, solver, o.observer)
}
