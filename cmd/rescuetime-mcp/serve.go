// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	rtmcp "github.com/cadencehq/rescuetime-mcp/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run rescuetime-mcp as a Model Context Protocol (MCP) server over stdio.

This exposes RescueTime operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "rescuetime": {
        "command": "rescuetime-mcp",
        "args": ["serve"],
        "env": {"RESCUETIME_API_KEY": "your-key"}
      }
    }
  }

Available tools: get_analytic_data, get_daily_summary_feed,
get_latest_daily_summary, get_alerts_feed, dismiss_alert,
get_highlights_feed, post_highlight, start_focus_session,
end_focus_session, get_focus_session_status, post_offline_time,
get_top_distractions, get_productivity_score, health_check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			server := rtmcp.NewServer(buildVersion(), client)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
