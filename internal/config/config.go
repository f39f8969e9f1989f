// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://resume.vkstore.site"

// DefaultTimeoutSeconds bounds every HTTP call issued by the gateway.
const DefaultTimeoutSeconds = 30

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables (RESUME_DASH_BASE_URL, RESUME_DASH_STATE_DIR).
type Config struct {
	BaseURL        string `json:"base_url,omitempty"`        // API base URL
	StateDir       string `json:"state_dir,omitempty"`       // Directory for storage.json and logs
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP request timeout
	Verbose        bool   `json:"verbose,omitempty"`         // Debug-level console logging
}

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

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under CLI flag values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// FromEnvironment builds the default config layer: environment variables
// first, then built-in defaults. The state directory defaults to
// ~/.resume-dashboard.
func FromEnvironment() Config {
	cfg := Config{
		BaseURL:        os.Getenv("RESUME_DASH_BASE_URL"),
		StateDir:       os.Getenv("RESUME_DASH_STATE_DIR"),
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.StateDir = filepath.Join(home, ".resume-dashboard")
	}
	return cfg
}

// Timeout returns the configured HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
