// Package config provides configuration loading and validation for the CLI
// and server wrappers. The engine core never reads global state; all tuning
// values travel through explicit config values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/melissa/career-advisor/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to defaults.
type Config struct {
	// Scoring weights; when all four are zero the declared defaults apply.
	SkillWeight      float64 `json:"skill_weight,omitempty"`
	SalaryWeight     float64 `json:"salary_weight,omitempty"`
	LocationWeight   float64 `json:"location_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`

	// Discovery
	NotifyThreshold int `json:"notify_threshold,omitempty"` // minimum score for the actionable subset
	Workers         int `json:"workers,omitempty"`          // scoring worker pool size

	// Collaborators (all optional; the engine itself performs no I/O)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL seen-set / snapshot store
	RedisURL    string `json:"redis_url,omitempty"`    // Redis seen-set store
	APIKey      string `json:"api_key,omitempty"`      // Gemini key for the explain command

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`
	JSONLogs bool `json:"json_logs,omitempty"`
	Port     int  `json:"port,omitempty"` // serve command listen port
}

// envAPIKey is the environment fallback for the Gemini API key
const envAPIKey = "GEMINI_API_KEY"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// Default returns a config with only environment-derived values set
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(envAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.NotifyThreshold < 0 || c.NotifyThreshold > 100 {
		return fmt.Errorf("config error: 'notify_threshold' must be within [0,100]")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if !c.weightsUnset() {
		if err := c.Weights().Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// Weights returns the configured scoring weights, or the declared defaults
// when no weight was set.
func (c *Config) Weights() scoring.Weights {
	if c.weightsUnset() {
		return scoring.DefaultWeights()
	}
	return scoring.Weights{
		Skill:      c.SkillWeight,
		Salary:     c.SalaryWeight,
		Location:   c.LocationWeight,
		Experience: c.ExperienceWeight,
	}
}

func (c *Config) weightsUnset() bool {
	return c.SkillWeight == 0 && c.SalaryWeight == 0 && c.LocationWeight == 0 && c.ExperienceWeight == 0
}
