// SPDX-License-Identifier: MIT

// Package fdm prices European and American options by solving the
// Black–Scholes PDE with finite differences.
//
// The PDE is first mapped to the heat equation y_τ = y_xx on a truncated
// log-moneyness window (see package grid), then stepped forward in
// transformed time with one of three schemes sharing the stencil weight
// w = dτ/dx²:
//
//   - Explicit       — y_i,j = y_i,j−1 + w·(y_i−1,j−1 − 2y_i,j−1 + y_i+1,j−1).
//     No linear solve. Stable only for w ≤ 0.5; the engine does not enforce
//     this unless WithStrictStability is given.
//   - Implicit       — (1+2w)·y_i − w·(y_i−1 + y_i+1) = y_i,j−1, solved per step.
//     Unconditionally stable, first order in time.
//   - Crank–Nicolson — half explicit, half implicit; diag 1+w, off −½w.
//     Second order in time.
//
// Implicit and Crank–Nicolson solve one tridiagonal system per step with
// tridiag.Thomas (default) or tridiag.SOR (WithSolver(SolverSOR)).
//
// Edge rows are written from analytic asymptotics at every step, scaled by
// the scheme's boundary factor (w, or ½w for Crank–Nicolson).
//
// American contracts clamp each interior cell after every step:
//
//	y_i,j = max(v_i,j, f·Intrinsic(x_i))
//
// where f is the same boundary factor. This one-sided projection
// approximates the linear-complementarity free boundary; it is NOT a PSOR or
// LCP solve and published reference prices depend on it.
//
// The price is read at the at-the-money node (x ≈ 0) of the final column and
// mapped back to dollars. Pricing at other spot levels is not supported.
//
// Every call allocates its own grid and buffers; nothing is shared between
// calls, so repeated calls with equal inputs return bit-identical prices.
package fdm
