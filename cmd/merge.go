package cmd

import (
	"context"
	"fmt"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for merge command
	mergeDest      string
	mergeHeader    bool
	mergeThreshold int
	mergeSheet     string
)

// mergeCmd reconciles two catalogs into a merged catalog.
var mergeCmd = &cobra.Command{
	Use:   "merge <primary> <secondary>",
	Short: "Merge primary descriptions with secondary prices",
	Long: `Merge reads the primary catalog (authoritative descriptions) and the
secondary catalog (current prices) and writes one row per primary product that
has an equivalent product in the secondary catalog.

Locations may be local .xlsx/.csv files, s3://bucket/key objects, or db://table tables.

Examples:
  # Write merged.xlsx in the current directory
  merge catalog_a.xlsx catalog_b.xlsx

  # Custom destination
  merge catalog_a.xlsx catalog_b.csv -d out/merged.csv

  # Catalogs with a header row, stricter threshold
  merge s3://catalogs/a.xlsx s3://catalogs/b.xlsx --header --threshold 95

  # Store the result in a database table
  merge catalog_a.xlsx catalog_b.xlsx -d db://merged_products`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeDest, "db-dest", "d", "", "Destination for the merged catalog (default from match.output)")
	mergeCmd.Flags().BoolVar(&mergeHeader, "header", false, "Treat the first row of each catalog as a header")
	mergeCmd.Flags().IntVar(&mergeThreshold, "threshold", 0, "Similarity threshold (0-100) for two descriptions to match")
	mergeCmd.Flags().StringVar(&mergeSheet, "sheet", "", "Worksheet to read from xlsx catalogs (default active sheet)")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("threshold") {
		cfg.Match.Threshold = mergeThreshold
	}
	if cmd.Flags().Changed("header") {
		cfg.Match.Header = mergeHeader
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Match.InputSheet = mergeSheet
	}
	if err := cfg.Match.Validate(); err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	dest := mergeDest
	if dest == "" {
		dest = cfg.Match.Output
	}

	svc, err := newService(cfg, l, args[0], args[1], dest)
	if err != nil {
		return err
	}

	summary, err := svc.Merge(ctx, args[0], args[1], dest)
	if err != nil {
		return err
	}

	l.Info("Merged catalog written",
		zap.String("dest", dest),
		zap.Int("primary", summary.Primary),
		zap.Int("secondary", summary.Secondary),
		zap.Int("matched", summary.Matched),
		zap.Int("unmatched", summary.Unmatched),
		zap.Int("suppressed", summary.Suppressed),
	)
	return nil
}
