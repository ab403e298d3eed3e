// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bsfdm/config"
)

// app carries the state shared by subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	cfgPath   string
	logLevel  string
	logFile   string
	logFormat string

	cfg    *config.Config
	log    *zap.Logger
	closer func()
}

// execute runs the command tree on args and releases the logger afterwards,
// whether or not the command succeeded.
func execute(args []string, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.finish(err)

	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{closer: func() {}}

	root := &cobra.Command{
		Use:          "bsfdm",
		Short:        "Finite-difference Black-Scholes pricer",
		Long:         `bsfdm prices European and American options with explicit, implicit and Crank-Nicolson finite differences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML scenario file (defaults: reference scenario)")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	pf.StringVar(&a.logFile, "log-file", "", "override log.file; logs are also rotated there")
	pf.StringVar(&a.logFormat, "log-format", "", "override log.format (console|json)")

	root.AddCommand(newPriceCmd(a), newCompareCmd(a))

	return root, a
}

// finish logs a failed run and flushes and closes the log sinks. It is safe
// to call when setup never ran.
func (a *app) finish(err error) {
	if err != nil && a.log != nil {
		a.log.Error("command failed", zap.Error(err))
	}
	a.closer()
	a.closer = func() {}
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, logger, closer
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgPath),
		zap.Float64("dx", cfg.Grid.DX),
		zap.Float64("dtau", cfg.Grid.DTau),
		zap.String("memory", cfg.Grid.Memory),
	)

	return nil
}
