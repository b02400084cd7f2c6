package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// complexityCommand creates the complexity command.
func (c *CLI) complexityCommand() *cobra.Command {
	var (
		strands int
		backend string
		measure string
		base    float64
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "complexity <word>",
		Short: "Compute the geometric complexity of a braid",
		Long: `Compute the geometric complexity of a braid: the log of how much the
braid stretches a reference curve system. The identity has complexity 0,
and composing a braid with itself increases it.

Examples:
  braidkit complexity "1 -2"
  braidkit complexity "1 -2" --measure minlength --base 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions("complexity")
			opts.Word = args[0]
			opts.Strands = strands
			opts.Base = base
			opts.Refresh = refresh
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

			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("%.10g\n", *result.Complexity)
			printStats(result.Strands, wordLen(opts.Word), result.CacheInfo.Hit)
			warnIfPresent(c, result.Warning)
			return nil
		},
	}

	cmd.Flags().IntVarP(&strands, "strands", "n", 0, "strand count (smallest that fits the word if 0)")
	cmd.Flags().StringVar(&backend, "backend", "", "scalar representation: fixed32, fixed64, big")
	cmd.Flags().StringVar(&measure, "measure", "", "length functional: intaxis, minlength")
	cmd.Flags().Float64Var(&base, "base", 0, "logarithm base (natural log if 0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}
