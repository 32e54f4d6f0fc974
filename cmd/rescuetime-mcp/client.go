// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"github.com/cadencehq/rescuetime-mcp/internal/config"
	"github.com/cadencehq/rescuetime-mcp/internal/output"
	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// newClient loads configuration and constructs the shared RescueTime client.
// A missing API key is fatal before any call is attempted.
func newClient() (*rescuetime.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("loading configuration", err)
	}
	if cfg.APIKey == "" {
		return nil, output.NewUserError(config.EnvAPIKey + " environment variable not set")
	}

	opts := []rescuetime.Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, rescuetime.WithBaseURL(cfg.BaseURL))
	}
	if timeout := cfg.Timeout(); timeout > 0 {
		opts = append(opts, rescuetime.WithTimeout(timeout))
	}
	return rescuetime.New(cfg.APIKey, opts...), nil
}
