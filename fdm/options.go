// SPDX-License-Identifier: MIT

// Package fdm: functional configuration for pricing calls.
//
// Defaults reproduce the reference tables: Thomas solver, SOR parameters
// ω = 1.2 / 15 sweeps / 1e-6, full value grid, no logging, no observer,
// instability reported but not rejected.
//
// Option constructors panic only on programmer errors (nil logger, nil
// observer, unknown enum). Values that typically come from user
// configuration (SOR parameters) are validated by Solve and returned as
// errors instead.

package fdm

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// Defaults (single source of truth).
const (
	// DefaultSolver is the tridiagonal solver used when none is chosen.
	DefaultSolver = SolverThomas

	// DefaultMemoryMode keeps the whole value grid for inspection.
	DefaultMemoryMode = grid.FullGrid

	// DefaultStrictStability leaves w > 0.5 on the explicit scheme as a warning.
	DefaultStrictStability = false
)

const (
	panicNilLogger     = "fdm: WithLogger: logger must not be nil"
	panicNilObserver   = "fdm: WithObserver: observer must not be nil"
	panicUnknownSolver = "fdm: WithSolver: unknown solver kind"
	panicUnknownMode   = "fdm: WithMemoryMode: unknown memory mode"
)

// Observer receives per-call and per-solve measurements. The metrics package
// provides a Prometheus implementation.
type Observer interface {
	// ObservePricing is called once per successful pricing call.
	ObservePricing(scheme Scheme, solver string, style ExerciseStyle, elapsed time.Duration)

	// ObserveSolve is called after every linear solve (Implicit, CrankNicolson).
	ObserveSolve(solver string, st tridiag.Stats)
}

type nopObserver struct{}

func (nopObserver) ObservePricing(Scheme, string, ExerciseStyle, time.Duration) {}
func (nopObserver) ObserveSolve(string, tridiag.Stats)                          {}

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of one pricing call.
type Options struct {
	solver   SolverKind
	sor      tridiag.SOROptions
	memory   grid.MemoryMode
	logger   *zap.Logger
	observer Observer
	strict   bool
}

func defaultOptions() Options {
	return Options{
		solver:   DefaultSolver,
		sor:      tridiag.DefaultSOROptions(),
		memory:   DefaultMemoryMode,
		logger:   zap.NewNop(),
		observer: nopObserver{},
		strict:   DefaultStrictStability,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSolver selects the tridiagonal solver for Implicit and CrankNicolson.
// Explicit ignores it.
func WithSolver(k SolverKind) Option {
	if k != SolverThomas && k != SolverSOR {
		panic(panicUnknownSolver)
	}

	return func(o *Options) { o.solver = k }
}

// WithSOROptions overrides the relaxation factor, sweep budget and tolerance
// used when the SOR solver is selected. Invalid values surface from Solve as
// tridiag.ErrBadOptions.
func WithSOROptions(so tridiag.SOROptions) Option {
	return func(o *Options) { o.sor = so }
}

// WithMemoryMode selects how many value-grid columns are kept.
// grid.RollingColumns runs in O(M) memory; Result.Grid then holds only the
// last two columns.
func WithMemoryMode(m grid.MemoryMode) Option {
	if m != grid.FullGrid && m != grid.RollingColumns {
		panic(panicUnknownMode)
	}

	return func(o *Options) { o.memory = m }
}

// WithLogger attaches a zap logger. The engine logs at Debug, and at Warn for
// an unstable explicit run.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver attaches a measurement sink.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}

	return func(o *Options) { o.observer = obs }
}

// WithStrictStability makes Solve reject an explicit run with w > 0.5 with
// ErrUnstable before allocating anything.
func WithStrictStability() Option {
	return func(o *Options) { o.strict = true }
}
