// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cadencehq/rescuetime-mcp/internal/config"
	"github.com/cadencehq/rescuetime-mcp/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the rescuetime-mcp CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescuetime-mcp",
		Short: "RescueTime bridge: MCP server and CLI",
		Long: `rescuetime-mcp bridges the RescueTime API for MCP-capable agents and humans.

Run 'rescuetime-mcp serve' to expose RescueTime as Model Context Protocol
tools over stdio, or use the query commands directly:

  rescuetime-mcp health        # check API key and service reachability
  rescuetime-mcp summary       # yesterday's daily summary
  rescuetime-mcp score         # today's productivity pulse
  rescuetime-mcp distractions  # today's top distractions

All commands require the RESCUETIME_API_KEY environment variable and
support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'rescuetime-mcp --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for the API key when it can't be exported.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newDistractionsCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. Variables already set in
// the environment always win; godotenv never overwrites existing values.
//
// Resolution order:
//  1. $CWD/.env.local                  (local override, gitignored)
//  2. $CWD/.env
//  3. ~/.config/rescuetime-mcp/env     (global fallback)
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}
