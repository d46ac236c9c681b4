package cmd

import (
	"encoding/json"
	"fmt"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/match"

	"github.com/spf13/cobra"
)

var scoreJSON bool

// scoreCmd shows how two descriptions compare.
var scoreCmd = &cobra.Command{
	Use:   "score <a> <b>",
	Short: "Score two product descriptions",
	Long: `Score normalizes both descriptions, prints the normalized forms, the
similarity score and whether the pair reaches the configured threshold.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		matcher, err := match.NewMatcher(cfg.Match)
		if err != nil {
			return err
		}
		exp := matcher.Explain(args[0], args[1])

		out := cmd.OutOrStdout()
		if scoreJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(exp)
		}

		fmt.Fprintf(out, "A:          %s\n", exp.A)
		fmt.Fprintf(out, "B:          %s\n", exp.B)
		fmt.Fprintf(out, "Normalized: %q / %q\n", exp.NormalizedA, exp.NormalizedB)
		fmt.Fprintf(out, "Score:      %d (threshold %d)\n", exp.Score, exp.Threshold)
		if exp.Equivalent {
			fmt.Fprintln(out, "Verdict:    same product")
		} else {
			fmt.Fprintln(out, "Verdict:    different products")
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")
	RootCmd.AddCommand(scoreCmd)
}
