// SPDX-License-Identifier: MIT

// Command bsfdm prices options with the finite-difference engine and prints
// the comparison table against the closed form.
//
//	bsfdm compare                       # reference scenario, text table
//	bsfdm compare --format csv --metrics
//	bsfdm price --scheme cn --solver sor --type put --style american
//	BSFDM_MARKET_VOLATILITY=0.3 bsfdm --config scenario.yaml compare
package main

import "os"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
