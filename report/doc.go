// SPDX-License-Identifier: MIT

// Package report runs every pricing method on one contract and tabulates the
// results against the closed form.
//
// The table has one block per method (Explicit, Implicit, Crank–Nicolson,
// and the two linear schemes again with SOR), four rows per block (European
// and American call and put), preceded by the closed-form European prices.
// European rows carry the relative error in percent; American rows have no
// closed form and show N.A.
//
// Values are shopspring decimals rounded to 6 places (errors to 2), so the
// rendered output does not depend on float formatting.
package report
