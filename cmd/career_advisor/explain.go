package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/llm"
	"github.com/melissa/career-advisor/internal/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Narrate an engine result in plain language",
	Long:  "Sends a discovery, optimization, or market result to the Gemini API and prints a short plain-language narration. Requires GEMINI_API_KEY.",
	RunE:  runExplain,
}

var (
	explainKind    string
	explainInput   string
	explainProfile string
	explainPosting string
)

func init() {
	explainCmd.Flags().StringVarP(&explainKind, "kind", "k", "", "Result kind: discovery, optimize, or market (required)")
	explainCmd.Flags().StringVarP(&explainInput, "input", "i", "", "Path to the result JSON file (required)")
	explainCmd.Flags().StringVarP(&explainProfile, "profile", "p", "", "Path to profile JSON (required for discovery)")
	explainCmd.Flags().StringVarP(&explainPosting, "posting", "j", "", "Path to posting JSON (required for optimize)")

	if err := explainCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	prompt, err := buildExplainPrompt()
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	client, err := llm.NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	narrative, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate narration: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, narrative)
	return nil
}

func buildExplainPrompt() (string, error) {
	switch explainKind {
	case "discovery":
		if explainProfile == "" {
			return "", fmt.Errorf("--profile is required for discovery narration")
		}
		var profile types.Profile
		if err := readJSONInput(explainProfile, "profile.schema.json", &profile); err != nil {
			return "", err
		}
		var result types.RankedDiscovery
		if err := readJSONInput(explainInput, "", &result); err != nil {
			return "", err
		}
		return llm.BuildDiscoveryPrompt(&profile, &result), nil

	case "optimize":
		if explainPosting == "" {
			return "", fmt.Errorf("--posting is required for optimize narration")
		}
		var posting types.Posting
		if err := readJSONInput(explainPosting, "posting.schema.json", &posting); err != nil {
			return "", err
		}
		var result types.ResumeOptimizationResult
		if err := readJSONInput(explainInput, "", &result); err != nil {
			return "", err
		}
		return llm.BuildOptimizationPrompt(&result, &posting), nil

	case "market":
		var insight types.MarketInsight
		if err := readJSONInput(explainInput, "", &insight); err != nil {
			return "", err
		}
		return llm.BuildInsightPrompt(&insight), nil

	default:
		return "", fmt.Errorf("unknown result kind %q (want discovery, optimize, or market)", explainKind)
	}
}
