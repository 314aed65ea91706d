package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/timeline"
	"github.com/melissa/career-advisor/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a graduation or availability date into an urgency tier",
	Long:  "Maps a reference date to an urgency tier (urgent, planning, strategic) and the fixed job-search strategy recommended for that tier.",
	RunE:  runClassify,
}

var (
	classifyDate   string
	classifyOutput string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyDate, "date", "d", "", "Reference date in YYYY-MM-DD form (required)")
	classifyCmd.Flags().StringVarP(&classifyOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := classifyCmd.MarkFlagRequired("date"); err != nil {
		panic(fmt.Sprintf("failed to mark date flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	referenceDate, err := time.Parse("2006-01-02", classifyDate)
	if err != nil {
		return fmt.Errorf("failed to parse date %q (want YYYY-MM-DD): %w", classifyDate, err)
	}

	tier, strategy, err := timeline.Classify(referenceDate, time.Now())
	if err != nil {
		return fmt.Errorf("failed to classify date: %w", err)
	}

	return writeJSONOutput(classifyOutput, struct {
		Tier     types.UrgencyTier `json:"tier"`
		Strategy types.Strategy    `json:"strategy"`
	}{Tier: tier, Strategy: strategy})
}
