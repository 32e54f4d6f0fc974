package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// DailySummaryFeedInput is the input for the get_daily_summary_feed tool.
type DailySummaryFeedInput struct {
	RestrictBegin string `json:"restrict_begin,omitempty" jsonschema:"start date in YYYY-MM-DD format"`
	RestrictEnd   string `json:"restrict_end,omitempty"   jsonschema:"end date in YYYY-MM-DD format"`
}

// DailySummaryFeedOutput is the output for the get_daily_summary_feed tool.
type DailySummaryFeedOutput struct {
	Summaries []rescuetime.DailySummary `json:"summaries"  jsonschema:"daily summary records"`
	Count     int                       `json:"count"      jsonschema:"number of summaries returned"`
	DateRange DateRange                 `json:"date_range" jsonschema:"echo of the requested date range"`
}

func handleDailySummaryFeed(client *rescuetime.Client) mcp.ToolHandlerFor[DailySummaryFeedInput, DailySummaryFeedOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DailySummaryFeedInput) (*mcp.CallToolResult, DailySummaryFeedOutput, error) {
		begin, err := parseDateField("restrict_begin", input.RestrictBegin)
		if err != nil {
			return nil, DailySummaryFeedOutput{}, err
		}
		end, err := parseDateField("restrict_end", input.RestrictEnd)
		if err != nil {
			return nil, DailySummaryFeedOutput{}, err
		}

		summaries, err := client.DailySummaryFeed(ctx, rescuetime.DailySummaryRequest{
			RestrictBegin: begin,
			RestrictEnd:   end,
		})
		if err != nil {
			return nil, DailySummaryFeedOutput{}, fmt.Errorf("getting daily summary feed: %w", err)
		}

		return nil, DailySummaryFeedOutput{
			Summaries: summaries,
			Count:     len(summaries),
			DateRange: DateRange{Begin: input.RestrictBegin, End: input.RestrictEnd},
		}, nil
	}
}

// LatestDailySummaryInput is the input for the get_latest_daily_summary tool
// (no parameters needed).
type LatestDailySummaryInput struct{}

// LatestDailySummaryOutput flattens yesterday's summary record. Found is
// false when the feed has no record for yesterday; the feed is never checked
// further back than that.
type LatestDailySummaryOutput struct {
	Found                    bool    `json:"found"                                jsonschema:"whether a summary exists for yesterday"`
	Date                     string  `json:"date,omitempty"                       jsonschema:"date the summary covers"`
	ProductivityPulse        int     `json:"productivity_pulse,omitempty"         jsonschema:"RescueTime's own 0-100 pulse"`
	VeryProductivePercentage float64 `json:"very_productive_percentage,omitempty" jsonschema:"share of very productive time"`
	ProductivePercentage     float64 `json:"productive_percentage,omitempty"      jsonschema:"share of productive time"`
	NeutralPercentage        float64 `json:"neutral_percentage,omitempty"         jsonschema:"share of neutral time"`
	DistractingPercentage    float64 `json:"distracting_percentage,omitempty"     jsonschema:"share of distracting time"`
	VeryDistractingPct       float64 `json:"very_distracting_percentage,omitempty" jsonschema:"share of very distracting time"`
	AllProductivePercentage  float64 `json:"all_productive_percentage,omitempty"  jsonschema:"combined productive share"`
	AllDistractingPercentage float64 `json:"all_distracting_percentage,omitempty" jsonschema:"combined distracting share"`
	TotalHours               float64 `json:"total_hours,omitempty"                jsonschema:"total tracked hours"`
	BusinessHours            float64 `json:"business_hours,omitempty"             jsonschema:"tracked hours during business hours"`
	Message                  string  `json:"message,omitempty"                    jsonschema:"explanation when no data is available"`
}

func handleLatestDailySummary(client *rescuetime.Client) mcp.ToolHandlerFor[LatestDailySummaryInput, LatestDailySummaryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LatestDailySummaryInput) (*mcp.CallToolResult, LatestDailySummaryOutput, error) {
		summary, err := client.LatestDailySummary(ctx)
		if err != nil {
			return nil, LatestDailySummaryOutput{}, fmt.Errorf("getting latest daily summary: %w", err)
		}
		if summary == nil {
			return nil, LatestDailySummaryOutput{
				Found: false,
				Message: fmt.Sprintf(
					"no daily summary available for %s; RescueTime summaries lag about a day behind",
					rescuetime.Yesterday()),
			}, nil
		}

		return nil, LatestDailySummaryOutput{
			Found:                    true,
			Date:                     summary.Date,
			ProductivityPulse:        summary.ProductivityPulse,
			VeryProductivePercentage: summary.VeryProductivePercentage,
			ProductivePercentage:     summary.ProductivePercentage,
			NeutralPercentage:        summary.NeutralPercentage,
			DistractingPercentage:    summary.DistractingPercentage,
			VeryDistractingPct:       summary.VeryDistractingPercentage,
			AllProductivePercentage:  summary.AllProductivePercentage,
			AllDistractingPercentage: summary.AllDistractingPercentage,
			TotalHours:               summary.TotalHours,
			BusinessHours:            summary.BusinessHours,
		}, nil
	}
}
