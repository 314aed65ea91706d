package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/db"
	"github.com/melissa/career-advisor/internal/market"
	"github.com/melissa/career-advisor/internal/types"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Synthesize a market insight from raw samples",
	Long:  "Aggregates raw market samples for a domain and location into salary percentiles, a negotiation range, top in-demand skills, a growth estimate, and a job-security score. With DATABASE_URL set the insight is also stored as a snapshot.",
	RunE:  runMarket,
}

var (
	marketDomain   string
	marketLocation string
	marketSamples  string
	marketOutput   string
	marketSave     bool
)

func init() {
	marketCmd.Flags().StringVarP(&marketDomain, "domain", "d", "", "Target domain, e.g. backend (required)")
	marketCmd.Flags().StringVarP(&marketLocation, "location", "l", "", "Target location")
	marketCmd.Flags().StringVarP(&marketSamples, "samples", "s", "", "Path to input market samples JSON array (required)")
	marketCmd.Flags().StringVarP(&marketOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	marketCmd.Flags().BoolVar(&marketSave, "save", false, "Store the insight snapshot in the configured database")

	if err := marketCmd.MarkFlagRequired("domain"); err != nil {
		panic(fmt.Sprintf("failed to mark domain flag as required: %v", err))
	}
	if err := marketCmd.MarkFlagRequired("samples"); err != nil {
		panic(fmt.Sprintf("failed to mark samples flag as required: %v", err))
	}

	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var samples []types.MarketSample
	if err := readJSONInput(marketSamples, "market_samples.schema.json", &samples); err != nil {
		return err
	}

	insight, err := market.Synthesize(marketDomain, marketLocation, samples)
	if err != nil {
		return fmt.Errorf("failed to synthesize market insight: %w", err)
	}

	if marketSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires DATABASE_URL to be configured")
		}
		ctx := cmd.Context()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open insight database: %w", err)
		}
		defer database.Close()

		id, err := database.SaveInsight(ctx, insight)
		if err != nil {
			return fmt.Errorf("failed to save insight snapshot: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved insight snapshot %s\n", id)
	}

	return writeJSONOutput(marketOutput, insight)
}
