// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fragmerge/builder"
	"github.com/katalvlaran/fragmerge/fragment"
	"github.com/katalvlaran/fragmerge/internal/workload"
)

// Generator names accepted by "generate".
const (
	genChain      = "chain"
	genSingletons = "singletons"
	genRandom     = "random"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n        int
		universe int
		p        float64
		seed     int64
		prefix   string
		oneBased bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "generate {chain|singletons|random}",
		Short: "Write a synthetic workload as YAML",
		Long: `Generates a workload:

  chain       n singletons plus every adjacent pair (n=3, --prefix a --one-based
              gives the a1/a2/a3 workload)
  singletons  n disjoint one-source fragments
  random      n fragments over --universe sources, each source kept with --p`,
		Example: `  fragmerge generate chain --n 3 --prefix a --one-based
  fragmerge generate random --n 40 --universe 120 --p 0.02 --seed 7 -o w.yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{genChain, genSingletons, genRandom},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []builder.Option{builder.WithPrefix(prefix)}
			if oneBased {
				opts = append(opts, builder.WithIDScheme(builder.OneBasedIDFn(prefix)))
			}

			var (
				frags []fragment.Fragment[string]
				err   error
			)
			switch args[0] {
			case genChain:
				frags, err = builder.Chain(n, opts...)
			case genSingletons:
				frags, err = builder.Singletons(n, opts...)
			case genRandom:
				frags, err = builder.RandomSparse(universe, n, p, append(opts, builder.WithSeed(seed))...)
			default:
				return fmt.Errorf("unknown generator %q", args[0])
			}
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := workload.FromFragments(frags).Write(out); err != nil {
				return err
			}

			a.logger.Debug("workload generated",
				zap.String("kind", args[0]),
				zap.Int("fragments", len(frags)))

			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 3, "number of sources (chain, singletons) or fragments (random)")
	cmd.Flags().IntVar(&universe, "universe", 10, "random: number of distinct sources")
	cmd.Flags().Float64Var(&p, "p", 0.1, "random: per-source inclusion probability")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random: RNG seed")
	cmd.Flags().StringVar(&prefix, "prefix", "s", "source identifier prefix")
	cmd.Flags().BoolVar(&oneBased, "one-based", false, "number sources from 1")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
