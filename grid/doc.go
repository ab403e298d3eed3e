// SPDX-License-Identifier: MIT

// Package grid builds the discretized domain shared by every finite-difference
// scheme: the change of variables that turns the Black–Scholes PDE into the
// heat equation, the log-moneyness and transformed-time axes, the terminal
// payoff, the analytic edge values, and the value grid itself.
//
// Change of variables:
//
//	x   = log(S/K)                       log-moneyness, truncated to [-2.5, 2.5]
//	τ   = ½σ²(T − t)                     transformed time, 0 at expiry
//	V   = K · exp(alpha·x + beta·τ) · y  y solves y_τ = y_xx
//
// with rp = 2r/σ², qp = 2(r−q)/σ², alpha = −½(qp−1), beta = −¼(qp−1)² − rp.
//
// The truncated window is a modelling approximation: extreme volatility or
// expiry combinations push mass past ±2.5 and bias the result. That is
// accepted, not detected.
//
// ValueGrid is indexed (space, time): row i is x_i, column j is τ_j. Column 0
// holds the payoff; rows 0 and M−1 hold analytic boundary values.
package grid
