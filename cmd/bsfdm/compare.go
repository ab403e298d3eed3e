// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bsfdm/fdm"
	"github.com/katalvlaran/bsfdm/metrics"
	"github.com/katalvlaran/bsfdm/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		format      string
		withMetrics bool
		dumpConfig  bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every method against the closed form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if dumpConfig {
				return a.cfg.WriteYAML(out)
			}
			if format != "table" && format != "csv" {
				return fmt.Errorf("unknown format %q (table|csv)", format)
			}

			opts, err := a.cfg.EngineOptions()
			if err != nil {
				return err
			}
			rec := metrics.NewRecorder()
			opts = append(opts, fdm.WithLogger(a.log), fdm.WithObserver(rec))

			start := time.Now()
			rows, err := report.Compare(a.cfg.Contract(fdm.Call, fdm.European), a.cfg.Discretization(), opts...)
			if err != nil {
				return err
			}
			a.log.Info("comparison finished", zap.Int("rows", len(rows)), zap.Duration("elapsed", time.Since(start)))

			if format == "csv" {
				err = report.WriteCSV(out, rows)
			} else {
				err = report.WriteTable(out, rows)
			}
			if err != nil || !withMetrics {
				return err
			}

			snap, err := rec.Snapshot()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			for _, s := range snap {
				fmt.Fprintln(out, s)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", "table", "table | csv")
	f.BoolVar(&withMetrics, "metrics", false, "print collected metrics after the table")
	f.BoolVar(&dumpConfig, "dump-config", false, "print the effective configuration as YAML and exit")

	return cmd
}
