// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fragmerge/closure"
	"github.com/katalvlaran/fragmerge/fragment"
	"github.com/katalvlaran/fragmerge/internal/workload"
)

func newClosureCmd(a *app) *cobra.Command {
	var (
		file      string
		mustcover []string
	)

	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Compute every covering fragment reachable by merging",
		Long: `Repeatedly merges every compatible pair until no new fragment appears, then
prints the distinct fragments whose sources cover --mustcover (default: every
source in the workload). Fails without output when limits.max_fragments is
reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workload.Load(file)
			if err != nil {
				return err
			}
			if len(mustcover) > 0 {
				w.MustCover = mustcover
			}

			ctx, cancel, err := a.runContext(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			set, err := a.closure(ctx, w)
			if err != nil {
				return err
			}

			return printFragments(cmd.OutOrStdout(), set.All())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workload YAML")
	cmd.Flags().StringSliceVar(&mustcover, "mustcover", nil, "sources every result must include")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// closure runs the exhaustive solver with the configured limits.
func (a *app) closure(ctx context.Context, w *workload.Workload) (*fragment.FrozenSet[string], error) {
	opts := []closure.Option{
		closure.WithContext(ctx),
		closure.WithMaxFragments(a.cfg.Limits.MaxFragments),
		closure.WithLogger(a.logger.Named("closure")),
	}

	base := w.Base()
	var (
		set *fragment.FrozenSet[string]
		err error
	)
	if w.HasMustCover() {
		set, err = closure.ClosureCovering(base, w.MustCover, opts...)
	} else {
		set, err = closure.Closure(base, opts...)
	}
	if err != nil {
		a.logger.Error("closure failed", zap.Int("base", len(base)), zap.Error(err))
		return nil, err
	}

	return set, nil
}

// printFragments writes one fragment per line.
func printFragments(out io.Writer, frags iter.Seq[fragment.Fragment[string]]) error {
	for f := range frags {
		if _, err := fmt.Fprintln(out, f); err != nil {
			return err
		}
	}

	return nil
}
