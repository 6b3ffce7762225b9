// SPDX-License-Identifier: MIT

// Command radialgen generates and inspects the radial wavefunction data
// tables (nodes, maxima, extents) of hydrogen-like orbitals.
//
// Usage:
//
//	radialgen tables --max-n 16 --out radial_data.cc
//	radialgen radial 3 0
//	radialgen laguerre 4 1 --check
//	radialgen roots -6 11 -6 1
//	radialgen license c
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/orbital/config"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "radialgen",
		Short: "Radial wavefunction data generator",
		Long: `radialgen computes radial nodes, maxima and extents of hydrogen-like
orbitals by isolating the real roots of associated Laguerre polynomials,
and emits them as C++ data tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")

	root.AddCommand(
		a.licenseCmd(),
		a.tablesCmd(),
		a.laguerreCmd(),
		a.rootsCmd(),
		a.radialCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.logger, err = zcfg.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
