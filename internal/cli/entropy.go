package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// entropyCommand creates the entropy command.
func (c *CLI) entropyCommand() *cobra.Command {
	var (
		strands int
		backend string
		measure string
		finite  bool
		iters   int
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "entropy <word>",
		Short: "Estimate the topological entropy of a braid",
		Long: `Estimate the topological entropy of a braid.

By default the estimate is iterative: the braid is applied repeatedly to a
normalized loop until the per-iteration growth rate settles. With --finite
the estimate is log of the coordinate growth after a fixed number of
applications, which is cheaper but cruder; pair it with --backend big on
more than a handful of iterations.

Examples:
  braidkit entropy "1 -2"
  braidkit entropy "1 -2" --finite --iters 100 --backend big`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions("entropy")
			opts.Word = args[0]
			opts.Strands = strands
			opts.Finite = finite
			opts.Iters = iters
			opts.Refresh = refresh
			opts.Tol = c.Config.Entropy.Tol
			opts.MaxIter = c.Config.Entropy.MaxIter
			opts.ConvReq = c.Config.Entropy.ConvReq
			if backend != "" {
				opts.Backend = backend
			}
			if measure != "" {
				opts.Measure = measure
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Estimating entropy...")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Entropy estimate failed")
				return err
			}
			spinner.Stop()

			fmt.Printf("%.10g\n", *result.Entropy)
			printKeyValue("iterations", fmt.Sprintf("%d", result.Iterations))
			printStats(result.Strands, wordLen(opts.Word), result.CacheInfo.Hit)
			warnIfPresent(c, result.Warning)
			return nil
		},
	}

	cmd.Flags().IntVarP(&strands, "strands", "n", 0, "strand count (smallest that fits the word if 0)")
	cmd.Flags().StringVar(&backend, "backend", "", "scalar representation for --finite: fixed32, fixed64, big")
	cmd.Flags().StringVar(&measure, "measure", "", "length functional for --finite: intaxis, minlength")
	cmd.Flags().BoolVar(&finite, "finite", false, "use the fixed-iteration estimate")
	cmd.Flags().IntVar(&iters, "iters", 0, "iterations for --finite")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}
