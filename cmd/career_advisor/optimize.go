package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/resume"
	"github.com/melissa/career-advisor/internal/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Score a resume against a posting and suggest improvements",
	Long:  "Computes an ATS keyword-coverage score for a resume against one posting and emits ranked suggestions (keyword gaps, structure, impact metrics). With --revised the revised text is rescored against the same posting.",
	RunE:  runOptimize,
}

var (
	optimizeResume  string
	optimizePosting string
	optimizeRevised string
	optimizeOutput  string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume text file (required)")
	optimizeCmd.Flags().StringVarP(&optimizePosting, "posting", "j", "", "Path to input Posting JSON file (required)")
	optimizeCmd.Flags().StringVar(&optimizeRevised, "revised", "", "Path to revised resume text to rescore")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("posting"); err != nil {
		panic(fmt.Sprintf("failed to mark posting flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	resumeText, err := os.ReadFile(optimizeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", optimizeResume, err)
	}

	var posting types.Posting
	if err := readJSONInput(optimizePosting, "posting.schema.json", &posting); err != nil {
		return err
	}

	result, err := resume.Optimize(string(resumeText), &posting)
	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}

	if optimizeRevised != "" {
		revisedText, err := os.ReadFile(optimizeRevised)
		if err != nil {
			return fmt.Errorf("failed to read revised resume file %s: %w", optimizeRevised, err)
		}
		if err := resume.Rescore(result, string(revisedText), &posting); err != nil {
			return fmt.Errorf("failed to rescore revised resume: %w", err)
		}
	}

	return writeJSONOutput(optimizeOutput, result)
}
