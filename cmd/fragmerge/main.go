// SPDX-License-Identifier: MIT

// Command fragmerge runs the fragment merge solvers over YAML workloads.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fragmerge/internal/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fragmerge",
		Short: "Merge fragments into covering partitions",
		Long: `fragmerge combines fragments (a set of sources plus a set of labels) whose
sources do not overlap.

  closure      exhaustive pairwise closure, filtered to covering fragments
  incremental  greedy merge over the compatibility graph
  compare      run both solvers on the same workload
  generate     write a synthetic workload`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to fragmerge.yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log the merge trace")

	root.AddCommand(
		newClosureCmd(a),
		newIncrementalCmd(a),
		newCompareCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// init loads the configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// runContext derives the per-run context from the configured timeout.
func (a *app) runContext(parent context.Context) (context.Context, context.CancelFunc, error) {
	d, err := a.cfg.TimeoutDuration()
	if err != nil {
		return nil, nil, err
	}
	if d == 0 {
		ctx, cancel := context.WithCancel(parent)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(parent, d)

	return ctx, cancel, nil
}
