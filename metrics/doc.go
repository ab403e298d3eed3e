// SPDX-License-Identifier: MIT

// Package metrics records pricing activity in Prometheus collectors.
//
// A Recorder owns a private registry, so several recorders (one per test,
// one per CLI run) never collide on the global default registerer. It
// implements fdm.Observer:
//
//	rec := metrics.NewRecorder()
//	price, err := fdm.Implicit(c, d, fdm.WithObserver(rec))
//
// Collected series:
//
//	bsfdm_pricings_total{scheme,solver,style}       counter
//	bsfdm_pricing_duration_seconds{scheme}          histogram
//	bsfdm_solver_sweeps{solver}                     histogram, one sample per solve
//	bsfdm_solver_nonconverged_total{solver}         counter
//
// Recorder is safe for concurrent use.
package metrics
