// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fragmerge/compat"
	"github.com/katalvlaran/fragmerge/fragment"
	"github.com/katalvlaran/fragmerge/internal/workload"
)

func newCompareCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run closure and incremental on the same workload",
		Long: `Runs both solvers concurrently and prints their results followed by the
number of incremental fragments that are also covering closure results. A
failure of either solver cancels the other.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workload.Load(file)
			if err != nil {
				return err
			}

			ctx, cancel, err := a.runContext(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			var (
				closed *fragment.FrozenSet[string]
				greedy []fragment.Fragment[string]
				stats  compat.Stats
			)
			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				closed, err = a.closure(gCtx, w)
				return err
			})
			g.Go(func() error {
				var err error
				greedy, stats, err = a.incremental(gCtx, w)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "closure: %d\n", closed.Len())
			if err := printFragments(out, closed.All()); err != nil {
				return err
			}
			fmt.Fprintf(out, "incremental: %d (merges=%d pruned=%d)\n",
				len(greedy), stats.Merges, stats.Pruned)
			shared := 0
			for _, f := range greedy {
				fmt.Fprintln(out, f)
				if closed.Contains(f) {
					shared++
				}
			}
			_, err = fmt.Fprintf(out, "shared: %d\n", shared)

			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workload YAML")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
