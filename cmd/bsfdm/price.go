// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bsfdm/fdm"
)

func newPriceCmd(a *app) *cobra.Command {
	var (
		scheme, solver, typ, style string
		strict                     bool
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price one contract with one scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sch, err := fdm.ParseScheme(scheme)
			if err != nil {
				return err
			}
			kind, err := fdm.ParseSolverKind(solver)
			if err != nil {
				return err
			}
			ot, err := fdm.ParseOptionType(typ)
			if err != nil {
				return err
			}
			es, err := fdm.ParseExerciseStyle(style)
			if err != nil {
				return err
			}

			opts, err := a.cfg.EngineOptions()
			if err != nil {
				return err
			}
			opts = append(opts, fdm.WithSolver(kind), fdm.WithLogger(a.log))
			if strict {
				opts = append(opts, fdm.WithStrictStability())
			}

			res, err := fdm.Solve(sch, a.cfg.Contract(ot, es), a.cfg.Discretization(), opts...)
			if err != nil {
				return err
			}

			solverName := res.Solver
			if solverName == "" {
				solverName = "none"
			}
			d := res.Diagnostics
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s/%s: %.6f\n", es, ot, res.Scheme, solverName, res.Price)
			fmt.Fprintf(cmd.OutOrStdout(), "  M=%d N=%d w=%.4f stable=%t sweeps=%d non-converged=%d\n",
				res.Grid.Rows(), res.Grid.Cols(), d.W, d.Stable, d.Sweeps, d.NonConverged)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&scheme, "scheme", "cn", "explicit | implicit | cn")
	f.StringVar(&solver, "solver", "thomas", "thomas | sor (ignored by explicit)")
	f.StringVar(&typ, "type", "call", "call | put")
	f.StringVar(&style, "style", "european", "european | american")
	f.BoolVar(&strict, "strict", false, "reject an explicit run with w > 0.5")

	return cmd
}
