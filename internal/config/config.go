package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at startup. The API key is the only
// required setting.
const (
	EnvAPIKey         = "RESCUETIME_API_KEY"
	EnvBaseURL        = "RESCUETIME_BASE_URL"
	EnvTimeoutSeconds = "RESCUETIME_TIMEOUT_SECONDS"
)

// Config holds the client settings. File values come from config.yaml in
// Dir(); environment variables always take precedence.
type Config struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured request timeout, or zero when unset
// (callers fall back to the client default).
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the optional config file and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{}

	if dir := Dir(); dir != "" {
		path := filepath.Join(dir, "config.yaml")
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw := os.Getenv(EnvTimeoutSeconds); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvTimeoutSeconds, raw)
		}
		cfg.TimeoutSeconds = seconds
	}

	return cfg, nil
}
