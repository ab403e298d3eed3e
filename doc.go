// Package bsfdm prices European and American options by solving the
// Black–Scholes PDE with finite differences.
//
// What is inside?
//
//	grid/      — log-moneyness / transformed-time axes, the heat-equation
//	             transform, payoff and analytic boundary values, ValueGrid
//	tridiag/   — tridiagonal System, Thomas (direct) and SOR (iterative) solvers
//	fdm/       — Explicit, Implicit and Crank–Nicolson schemes, early-exercise
//	             projection, at-the-money extraction, functional options
//	analytic/  — closed-form Black–Scholes with dividend yield
//	report/    — every method against the closed form, as a table or CSV
//	metrics/   — Prometheus recorder plugged in through fdm.WithObserver
//	config/    — viper-backed scenario (defaults, YAML, BSFDM_* env)
//	cmd/bsfdm  — the command line: `bsfdm price`, `bsfdm compare`
//
// Quick start:
//
//	c := fdm.Contract{Spot: 20, Strike: 20, Rate: 0.03, Dividend: 0.04,
//		Volatility: 0.8, Expiry: 1, Type: fdm.Put, Style: fdm.American}
//	price, err := fdm.CrankNicolson(c, fdm.Discretization{DX: 0.05, DTau: 0.00125})
//
// Every pricing call is synchronous and owns its buffers; nothing is shared
// between calls except an optional metrics recorder.
package bsfdm
