package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/config"
	"github.com/melissa/career-advisor/internal/db"
	"github.com/melissa/career-advisor/internal/discovery"
	"github.com/melissa/career-advisor/internal/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Score and rank a batch of postings for a profile",
	Long:  "Scores every unseen posting in a batch against a profile, ranks results by compatibility, flags the actionable subset, and records newly surfaced postings so repeat runs stay quiet.",
	RunE:  runDiscover,
}

var (
	discoverProfile  string
	discoverPostings string
	discoverOutput   string
	discoverSeenFile string
	discoverPartial  bool
)

func init() {
	discoverCmd.Flags().StringVarP(&discoverProfile, "profile", "p", "", "Path to input Profile JSON file (required)")
	discoverCmd.Flags().StringVarP(&discoverPostings, "postings", "j", "", "Path to input postings JSON array (required)")
	discoverCmd.Flags().StringVarP(&discoverOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	discoverCmd.Flags().StringVar(&discoverSeenFile, "seen", "", "Path to a seen-set JSON file, used when no database or Redis store is configured")
	discoverCmd.Flags().BoolVar(&discoverPartial, "allow-partial", false, "On cancellation, emit the results scored so far instead of failing")

	if err := discoverCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := discoverCmd.MarkFlagRequired("postings"); err != nil {
		panic(fmt.Sprintf("failed to mark postings flag as required: %v", err))
	}

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var profile types.Profile
	if err := readJSONInput(discoverProfile, "profile.schema.json", &profile); err != nil {
		return err
	}
	var postings []types.Posting
	if err := readJSONInput(discoverPostings, "postings.schema.json", &postings); err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeStore, err := openSeenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	seen, err := loadSeenSet(ctx, store, profile.ID)
	if err != nil {
		return err
	}

	pipeline, err := buildPipeline(cfg, log, discoverPartial)
	if err != nil {
		return err
	}

	result, newlySeen, err := pipeline.Discover(ctx, &profile, postings, seen)
	var partial *discovery.PartialBatchFailure
	if err != nil && !errors.As(err, &partial) {
		return fmt.Errorf("discovery failed: %w", err)
	}
	if partial != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %d posting(s) skipped as malformed\n", len(partial.Skipped))
	}

	if err := saveSeenSet(ctx, store, profile.ID, seen, newlySeen); err != nil {
		return err
	}

	if err := writeJSONOutput(discoverOutput, result); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d posting(s), %d actionable, %d newly seen\n",
		len(result.Results), len(result.Actionable), len(newlySeen))
	return nil
}

// openSeenStore picks the configured seen-set backend: PostgreSQL when
// DATABASE_URL is set, Redis when REDIS_URL is set, otherwise nil and the
// --seen file (if any) carries the state.
func openSeenStore(ctx context.Context, cfg *config.Config) (db.SeenStore, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open seen-set database: %w", err)
		}
		return database, database.Close, nil
	case cfg.RedisURL != "":
		store, err := db.NewRedisSeenStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open Redis seen-set: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

func loadSeenSet(ctx context.Context, store db.SeenStore, profileID string) (map[string]struct{}, error) {
	if store != nil {
		seen, err := store.LoadSeen(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("failed to load seen-set: %w", err)
		}
		return seen, nil
	}

	seen := make(map[string]struct{})
	if discoverSeenFile == "" {
		return seen, nil
	}
	content, err := os.ReadFile(discoverSeenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return seen, nil
		}
		return nil, fmt.Errorf("failed to read seen-set file %s: %w", discoverSeenFile, err)
	}
	var ids []string
	if err := json.Unmarshal(content, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seen-set file %s: %w", discoverSeenFile, err)
	}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

func saveSeenSet(ctx context.Context, store db.SeenStore, profileID string, previous map[string]struct{}, newlySeen []string) error {
	if len(newlySeen) == 0 {
		return nil
	}
	if store != nil {
		if err := store.MarkSeen(ctx, profileID, newlySeen); err != nil {
			return fmt.Errorf("failed to mark postings seen: %w", err)
		}
		return nil
	}
	if discoverSeenFile == "" {
		return nil
	}

	merged := make([]string, 0, len(previous)+len(newlySeen))
	for id := range previous {
		merged = append(merged, id)
	}
	merged = append(merged, newlySeen...)
	sort.Strings(merged)
	return writeJSONOutput(discoverSeenFile, merged)
}
