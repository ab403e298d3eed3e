// SPDX-License-Identifier: MIT

package fdm

import (
	"github.com/katalvlaran/bsfdm/grid"
)

// Extract reads the at-the-money node (i = M/2) of the final column and maps
// it back to a dollar price: y·K·exp(α·x_i + β·t_N−1).
//
// The node sits at x ≈ 0 only when M is odd; with an even M it is the first
// point right of zero. Either way the price is an at-the-money quote.
func Extract(vg *grid.ValueGrid, dom *grid.Domain, strike float64) (float64, error) {
	if vg == nil || dom == nil {
		return 0, fdmErrorf(opExtract, ErrInvalidParameter)
	}
	if !finitePositive(strike) {
		return 0, fdmErrorf(opExtract, ErrBadStrike)
	}
	if vg.Rows() != dom.Space.Len() || vg.Cols() != dom.Time.Len() {
		return 0, fdmErrorf(opExtract, grid.ErrOutOfRange)
	}

	i, j := dom.Space.ATM(), dom.Time.Last()
	y, err := vg.At(i, j)
	if err != nil {
		return 0, fdmErrorf(opExtract, err)
	}

	return dom.Transform.Dollar(y, strike, dom.Space.X[i], dom.Time.T[j]), nil
}
