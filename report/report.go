// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/bsfdm/analytic"
	"github.com/katalvlaran/bsfdm/fdm"
)

// Rounding of rendered values.
const (
	ValuePlaces = 6
	ErrorPlaces = 2
)

// ClosedFormMethod labels the reference rows.
const ClosedFormMethod = "Closed-form Black-Scholes"

// Method is one (scheme, solver) pair in the comparison.
type Method struct {
	Name   string
	Scheme fdm.Scheme
	Solver fdm.SolverKind
}

// Methods returns the compared methods in table order.
func Methods() []Method {
	return []Method{
		{Name: "Explicit FDM", Scheme: fdm.SchemeExplicit, Solver: fdm.SolverThomas},
		{Name: "Implicit FDM", Scheme: fdm.SchemeImplicit, Solver: fdm.SolverThomas},
		{Name: "Crank-Nicolson FDM", Scheme: fdm.SchemeCrankNicolson, Solver: fdm.SolverThomas},
		{Name: "Implicit (SOR) FDM", Scheme: fdm.SchemeImplicit, Solver: fdm.SolverSOR},
		{Name: "Crank-Nicolson (SOR) FDM", Scheme: fdm.SchemeCrankNicolson, Solver: fdm.SolverSOR},
	}
}

// Row is one line of the comparison table.
type Row struct {
	Method   string
	Option   string // e.g. "European call"
	Value    decimal.NullDecimal // unset when the method produced NaN or ±Inf
	ErrorPct decimal.NullDecimal // set for finite European finite-difference rows only
}

// variant is one contract priced by every method.
type variant struct {
	style fdm.ExerciseStyle
	typ   fdm.OptionType
}

var variants = [...]variant{
	{fdm.European, fdm.Call},
	{fdm.European, fdm.Put},
	{fdm.American, fdm.Call},
	{fdm.American, fdm.Put},
}

func optionLabel(style fdm.ExerciseStyle, typ fdm.OptionType) string {
	name := "European"
	if style == fdm.American {
		name = "American"
	}

	return name + " " + typ.String()
}

// Compare prices base (its Type and Style are ignored) with the closed form
// and every method of Methods, in table order. opts are applied to each
// pricing call before the method's solver choice.
func Compare(base fdm.Contract, d fdm.Discretization, opts ...fdm.Option) ([]Row, error) {
	// Stage 1: reference prices.
	ref := make(map[fdm.OptionType]float64, 2)
	rows := make([]Row, 0, 2+len(variants)*len(Methods()))
	for _, typ := range []fdm.OptionType{fdm.Call, fdm.Put} {
		v, err := analytic.ClosedForm(base.Spot, base.Strike, base.Rate, base.Dividend,
			base.Volatility, base.Expiry, typ.Sign())
		if err != nil {
			return nil, fmt.Errorf("Compare: %w", err)
		}
		ref[typ] = v
		rows = append(rows, Row{
			Method: ClosedFormMethod,
			Option: optionLabel(fdm.European, typ),
			Value:  rounded(v, ValuePlaces),
		})
	}

	// Stage 2: every method on every variant.
	for _, m := range Methods() {
		callOpts := make([]fdm.Option, 0, len(opts)+1)
		callOpts = append(callOpts, opts...)
		callOpts = append(callOpts, fdm.WithSolver(m.Solver))

		for _, vr := range variants {
			c := base
			c.Type, c.Style = vr.typ, vr.style
			price, err := fdm.Price(m.Scheme, c, d, callOpts...)
			if err != nil {
				return nil, fmt.Errorf("Compare: %s %s: %w", m.Name, optionLabel(vr.style, vr.typ), err)
			}

			row := Row{
				Method: m.Name,
				Option: optionLabel(vr.style, vr.typ),
				Value:  rounded(price, ValuePlaces),
			}
			if vr.style == fdm.European {
				row.ErrorPct = RelativeError(price, ref[vr.typ])
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// RelativeError returns 100·(got − want)/want rounded to ErrorPlaces.
// The result is unset when either input is NaN or ±Inf, or when want is 0.
func RelativeError(got, want float64) decimal.NullDecimal {
	if !finite(got) || !finite(want) || want == 0 {
		return decimal.NullDecimal{}
	}
	g, w := decimal.NewFromFloat(got), decimal.NewFromFloat(want)

	return decimal.NewNullDecimal(g.Sub(w).Mul(decimal.NewFromInt(100)).Div(w).Round(ErrorPlaces))
}

// rounded converts v to a decimal, leaving it unset for NaN and ±Inf.
// An unstable explicit run diverges to such values without an error.
func rounded(v float64, places int32) decimal.NullDecimal {
	if !finite(v) {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(decimal.NewFromFloat(v).Round(places))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
