// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cadencehq/rescuetime-mcp/internal/output"
)

// healthResult holds the data for health output.
type healthResult struct {
	Healthy   bool   `json:"healthy"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// newHealthCmd creates the health command.
func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check RescueTime API reachability and key validity",
		Long: `Check that the RescueTime API is reachable and the configured key is valid.

Performs one daily-summary read. Exits non-zero when the check fails.

Examples:
  rescuetime-mcp health         # Human-readable result
  rescuetime-mcp health --json  # JSON for scripting`,
		RunE: runHealth,
	}
}

// runHealth executes the health command.
func runHealth(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	client, err := newClient()
	if err != nil {
		printer.Error(err)
		return err
	}
	defer client.Close()

	result := healthResult{
		Healthy:   true,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if pingErr := client.Ping(cmd.Context()); pingErr != nil {
		result.Healthy = false
		result.Error = pingErr.Error()
	}

	if result.Healthy {
		if printer.IsJSON() {
			return printer.WriteJSON(result)
		}
		printer.Success("RescueTime API is healthy")
		return nil
	}

	healthErr := output.NewSystemError("health check failed: " + result.Error)
	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		printer.Error(healthErr)
	}
	return healthErr
}
