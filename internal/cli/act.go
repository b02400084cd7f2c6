package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topodyn/braidkit/pkg/braid"
	pkgio "github.com/topodyn/braidkit/pkg/io"
)

// actCommand creates the act command, which applies a braid word to loop
// coordinates.
func (c *CLI) actCommand() *cobra.Command {
	var (
		coords   string
		strands  int
		backend  string
		basis    string
		jsonPath string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "act <word>",
		Short: "Apply a braid word to a loop in Dynnikov coordinates",
		Long: `Apply a braid word to a loop in Dynnikov coordinates.

The word is given as signed generator indices, e.g. "1 -2 3" for σ1 σ2⁻¹ σ3.
Without --coords the word acts on the canonical basis loop for its strand
count; with --coords it acts on the given loop. With --json the parsed word
is also written as a braid document that analyze and later act runs accept.

Examples:
  braidkit act "1 -2 3"
  braidkit act "1 -2" --coords "0 0 -1 -1" --backend big
  braidkit act "1 -2 3" --json braid.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions("act")
			opts.Word = args[0]
			opts.Coords = coords
			opts.Strands = strands
			opts.Refresh = refresh
			if backend != "" {
				opts.Backend = backend
			}
			if basis != "" {
				opts.Basis = basis
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

			parts := make([]string, len(result.Coords))
			for i, x := range result.Coords {
				parts[i] = fmt.Sprintf("%d", x)
			}
			fmt.Println(strings.Join(parts, " "))
			printStats(result.Strands, wordLen(opts.Word), result.CacheInfo.Hit)
			warnIfPresent(c, result.Warning)

			if jsonPath != "" {
				if err := exportWordJSON(opts.Word, strands, jsonPath); err != nil {
					return err
				}
				printFile(jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&coords, "coords", "", "loop coordinates to act on (canonical basis loop if empty)")
	cmd.Flags().IntVarP(&strands, "strands", "n", 0, "strand count (smallest that fits the word if 0)")
	cmd.Flags().StringVar(&backend, "backend", "", "scalar representation: fixed32, fixed64, big, float")
	cmd.Flags().StringVar(&basis, "basis", "", "canonical basis: default, left, dehornoy, bp")
	cmd.Flags().StringVar(&jsonPath, "json", "", "also write the parsed word as a JSON braid document")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}

// exportWordJSON writes the parsed, strand-normalized word to path as a
// braid document.
func exportWordJSON(raw string, strands int, path string) error {
	w, err := parseWordArg(raw, strands)
	if err != nil {
		return err
	}
	cb, err := braid.NewChrono(w, nil)
	if err != nil {
		return err
	}
	return pkgio.ExportJSON(cb, path)
}

// warnIfPresent surfaces a result warning to the user.
func warnIfPresent(c *CLI, warning string) {
	if warning != "" {
		printWarning("%s", warning)
	}
}
