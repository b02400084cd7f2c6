package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topodyn/braidkit/pkg/braid"
	pkgio "github.com/topodyn/braidkit/pkg/io"
	"github.com/topodyn/braidkit/pkg/pipeline"
)

// analyzeCommand creates the analyze command, which runs the full analysis
// battery over every word in a file.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		backend string
		measure string
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <words.txt>",
		Short: "Run entropy and complexity over a word list",
		Long: `Run entropy and complexity over a word list.

The input file holds one braid word per line, as whitespace- or
comma-separated signed generator indices; # starts a comment. A JSON braid
file (with a "gens" array) is also accepted, as long as it does not carry
nontrivial crossing times.

With --output the collected results are written as a JSON array.

Examples:
  braidkit analyze words.txt
  braidkit analyze braid.json -o results.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadWords(args[0])
			if err != nil {
				return err
			}
			if len(words) == 0 {
				printInfo("No words to analyze")
				return nil
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Analyzing %d words...", len(words)))
			spinner.Start()

			var results []*pipeline.Result
			for _, w := range words {
				raw := wordString(w)
				for _, op := range []string{pipeline.OpEntropy, pipeline.OpComplexity} {
					opts := c.baseOptions(op)
					opts.Word = raw
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
					res, err := runner.Execute(cmd.Context(), opts)
					if err != nil {
						spinner.StopWithError(fmt.Sprintf("Analysis failed on %q", raw))
						return err
					}
					results = append(results, res)
				}
			}
			spinner.StopWithSuccess(fmt.Sprintf("Analyzed %d words", len(words)))

			printResults(words, results)

			if output != "" {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("encode results: %w", err)
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "scalar representation: fixed32, fixed64, big")
	cmd.Flags().StringVar(&measure, "measure", "", "length functional: intaxis, minlength")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}

// loadWords reads a word list from a text or JSON braid file. JSON braids
// carrying nontrivial crossing times are rejected: entropy and complexity
// are defined on plain words, not on time-stamped braids.
func loadWords(path string) ([]braid.Word, error) {
	if strings.HasSuffix(path, ".json") {
		c, err := pkgio.ImportJSON(path)
		if err != nil {
			return nil, err
		}
		if !trivialTimes(c.Times()) {
			return nil, fmt.Errorf("%w: %s carries crossing times", braid.ErrTimestamped, path)
		}
		return []braid.Word{c.Word()}, nil
	}
	return pkgio.ImportText(path)
}

// trivialTimes reports whether times is the default 1..n sequence.
func trivialTimes(times []float64) bool {
	for i, t := range times {
		if t != float64(i+1) {
			return false
		}
	}
	return true
}

// wordString renders a word as the space-separated form the pipeline parses.
func wordString(w braid.Word) string {
	gens := w.Gens()
	parts := make([]string, len(gens))
	for i, g := range gens {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return strings.Join(parts, " ")
}

// printResults prints one line per word with its entropy and complexity.
func printResults(words []braid.Word, results []*pipeline.Result) {
	for i, w := range words {
		entropy := results[2*i]
		complexity := results[2*i+1]
		fmt.Printf("%s  entropy=%.6g  complexity=%.6g\n",
			StyleValue.Render(wordString(w)),
			*entropy.Entropy, *complexity.Complexity)
		if entropy.Warning != "" {
			printWarning("%s", entropy.Warning)
		}
		if complexity.Warning != "" {
			printWarning("%s", complexity.Warning)
		}
	}
}
