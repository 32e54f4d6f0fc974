// Package mcp provides a Model Context Protocol server bridging the
// RescueTime API. It exposes each API capability as an MCP tool that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// NewServer creates an MCP server with all RescueTime tools registered.
// The client is shared by every tool invocation for the life of the process.
func NewServer(version string, client *rescuetime.Client) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rescuetime-mcp",
		Version: version,
	}, nil)
	registerTools(server, client)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all RescueTime tools to the server.
func registerTools(server *mcp.Server, client *rescuetime.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_analytic_data",
		Description: "Query RescueTime analytic data: time spent per activity or category, by rank or time interval, with optional date range and restriction filters.",
		Annotations: readOnlyAnnotations(),
	}, handleAnalyticData(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_daily_summary_feed",
		Description: "Fetch RescueTime daily summaries (productivity pulse, per-level percentages, total hours). Data exists for yesterday and earlier only.",
		Annotations: readOnlyAnnotations(),
	}, handleDailySummaryFeed(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_latest_daily_summary",
		Description: "Fetch yesterday's daily summary, the most recent one RescueTime can have, as a flattened record. Reports no_data when the feed has nothing for yesterday.",
		Annotations: readOnlyAnnotations(),
	}, handleLatestDailySummary(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_alerts_feed",
		Description: "List RescueTime alerts (op=list) or dismiss the alert feed (op=dismiss).",
		Annotations: readOnlyAnnotations(),
	}, handleAlertsFeed(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dismiss_alert",
		Description: "Dismiss a specific alert by ID. The RescueTime API does not support this; the tool always reports the limitation without calling the API.",
		Annotations: readOnlyAnnotations(),
	}, handleDismissAlert(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_highlights_feed",
		Description: "Fetch RescueTime highlights, optionally scoped to a date range.",
		Annotations: readOnlyAnnotations(),
	}, handleHighlightsFeed(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "post_highlight",
		Description: "Record a highlight for a given date.",
		Annotations: writeAnnotations(),
	}, handlePostHighlight(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_focus_session",
		Description: "Start a FocusTime session. Duration must be -1 (until end of day) or a positive multiple of 5 minutes; defaults to 30.",
		Annotations: writeAnnotations(),
	}, handleStartFocusSession(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "end_focus_session",
		Description: "End the current FocusTime session.",
		Annotations: writeAnnotations(),
	}, handleEndFocusSession(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_focus_session_status",
		Description: "Report whether a FocusTime session is active, based on the recent session event feed.",
		Annotations: readOnlyAnnotations(),
	}, handleFocusSessionStatus(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "post_offline_time",
		Description: "Record offline time (meetings, calls) for a given date.",
		Annotations: writeAnnotations(),
	}, handlePostOfflineTime(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_top_distractions",
		Description: "Today's most distracting activities: negative-productivity rows sorted by time spent, with aggregate distraction totals.",
		Annotations: readOnlyAnnotations(),
	}, handleTopDistractions(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_productivity_score",
		Description: "Today's weighted productivity pulse (0-100) with per-level time breakdown and a qualitative rating.",
		Annotations: readOnlyAnnotations(),
	}, handleProductivityScore(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "health_check",
		Description: "Check RescueTime API reachability and key validity. Never fails; reports healthy true/false.",
		Annotations: readOnlyAnnotations(),
	}, handleHealthCheck(client))
}
