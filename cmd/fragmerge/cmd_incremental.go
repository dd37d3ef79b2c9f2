// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fragmerge/compat"
	"github.com/katalvlaran/fragmerge/fragment"
	"github.com/katalvlaran/fragmerge/internal/workload"
)

func newIncrementalCmd(a *app) *cobra.Command {
	var (
		file   string
		repair bool
	)

	cmd := &cobra.Command{
		Use:   "incremental",
		Short: "Greedily merge fragments over the compatibility graph",
		Long: `Builds the compatibility graph of the workload and repeatedly merges the
oldest fragment with its oldest compatible partner, printing each fragment
that has no partner left. --repair keeps third-party adjacency exact across
merges (overrides incremental.repair_adjacency).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workload.Load(file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("repair") {
				a.cfg.Incremental.RepairAdjacency = repair
			}

			ctx, cancel, err := a.runContext(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			frags, _, err := a.incremental(ctx, w)
			if err != nil {
				return err
			}

			return printFragments(cmd.OutOrStdout(), slices.Values(frags))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workload YAML")
	cmd.Flags().BoolVar(&repair, "repair", false, "rewire third nodes to merged nodes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// incremental drains a Merger over the workload, checking ctx between
// emissions. Nothing is returned when ctx ends first.
func (a *app) incremental(ctx context.Context, w *workload.Workload) ([]fragment.Fragment[string], compat.Stats, error) {
	opts := []compat.Option{compat.WithLogger(a.logger.Named("incremental"))}
	if a.cfg.Incremental.RepairAdjacency {
		opts = append(opts, compat.WithRepairAdjacency())
	}

	m := compat.Merge(compat.Build(w.Base()), opts...)
	var out []fragment.Fragment[string]
	for f := range m.All() {
		if err := ctx.Err(); err != nil {
			return nil, m.Stats(), err
		}
		out = append(out, f)
	}

	st := m.Stats()
	a.logger.Info("incremental complete",
		zap.Int("merges", st.Merges),
		zap.Int("emitted", st.Emitted),
		zap.Int("pruned", st.Pruned),
		zap.Bool("repair", a.cfg.Incremental.RepairAdjacency))

	return out, st, nil
}
