// SPDX-License-Identifier: MIT

// Package analytic holds the closed-form Black–Scholes price of European
// options on an asset paying a continuous dividend yield q:
//
//	d1   = (ln(S/K) + (r − q + σ²/2)·T) / (σ·√T)
//	d2   = d1 − σ·√T
//	call = S·e^(−qT)·N(d1) − K·e^(−rT)·N(d2)
//	put  = K·e^(−rT)·N(−d2) − S·e^(−qT)·N(−d1)
//
// N is the standard normal CDF from gonum's distuv.UnitNormal. The finite
// difference engine is measured against these values; nothing in package
// fdm depends on this package.
package analytic
