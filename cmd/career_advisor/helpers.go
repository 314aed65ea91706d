package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/melissa/career-advisor/internal/config"
	"github.com/melissa/career-advisor/internal/discovery"
	"github.com/melissa/career-advisor/internal/logger"
	"github.com/melissa/career-advisor/internal/schemas"
	"github.com/melissa/career-advisor/internal/scoring"
)

// loadRuntime resolves the config file and root flags into the config, logger
// pair every command starts from.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	var cfg *config.Config
	var err error
	if rootConfigPath != "" {
		cfg, err = config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config %s: %w", rootConfigPath, err)
		}
	} else {
		cfg = config.Default()
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	if rootJSONLogs {
		cfg.JSONLogs = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

// buildPipeline wires a scorer and discovery pipeline from config values
func buildPipeline(cfg *config.Config, log *zap.Logger, allowPartial bool) (*discovery.Pipeline, error) {
	scorer, err := scoring.NewScorer(cfg.Weights())
	if err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}
	return discovery.NewPipeline(scorer, discovery.Options{
		NotifyThreshold: cfg.NotifyThreshold,
		Workers:         cfg.Workers,
		AllowPartial:    allowPartial,
	}, log), nil
}

// readJSONInput loads a JSON document, optionally checking it against a
// bundled schema first. A missing schema file skips the check rather than
// failing the command.
func readJSONInput(path, schemaName string, dst any) error {
	if schemaPath := resolveSchema(schemaName); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return fmt.Errorf("input %s failed schema validation: %w", path, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// resolveSchema maps a schema file name to its on-disk path; an empty name
// means the input has no bundled schema.
func resolveSchema(schemaName string) string {
	if schemaName == "" {
		return ""
	}
	return schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
}

// writeJSONOutput writes an indented JSON document, to stdout when path is
// empty, creating parent directories as needed.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
