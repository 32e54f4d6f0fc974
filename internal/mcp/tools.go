package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// --- Alerts tools ---

// AlertsFeedInput is the input for the get_alerts_feed tool.
type AlertsFeedInput struct {
	Op string `json:"op,omitempty" jsonschema:"operation to perform: list (default) or dismiss"`
}

// AlertsFeedOutput is the output for the get_alerts_feed tool. List mode
// fills Alerts/Count; dismiss mode fills Status/Message.
type AlertsFeedOutput struct {
	Alerts    []map[string]any `json:"alerts,omitempty"  jsonschema:"alert records from the feed"`
	Count     int              `json:"count"             jsonschema:"number of alerts returned"`
	Operation string           `json:"operation"         jsonschema:"operation that was performed"`
	Status    string           `json:"status,omitempty"  jsonschema:"result status for dismiss operations"`
	Message   string           `json:"message,omitempty" jsonschema:"upstream message for dismiss operations"`
}

func handleAlertsFeed(client *rescuetime.Client) mcp.ToolHandlerFor[AlertsFeedInput, AlertsFeedOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AlertsFeedInput) (*mcp.CallToolResult, AlertsFeedOutput, error) {
		op := input.Op
		if op == "" {
			op = "list"
		}

		switch op {
		case "list":
			alerts, err := client.ListAlerts(ctx)
			if err != nil {
				return nil, AlertsFeedOutput{}, fmt.Errorf("getting alerts feed: %w", err)
			}
			return nil, AlertsFeedOutput{
				Alerts:    alerts,
				Count:     len(alerts),
				Operation: "list",
			}, nil
		case "dismiss":
			status, err := client.DismissAlerts(ctx)
			if err != nil {
				return nil, AlertsFeedOutput{}, fmt.Errorf("dismissing alerts: %w", err)
			}
			return nil, AlertsFeedOutput{
				Operation: status.Operation,
				Status:    status.Status,
				Message:   status.Message,
			}, nil
		default:
			return nil, AlertsFeedOutput{}, fmt.Errorf("invalid op %q: must be one of list, dismiss", input.Op)
		}
	}
}

// DismissAlertInput is the input for the dismiss_alert tool.
type DismissAlertInput struct {
	AlertID int64 `json:"alert_id" jsonschema:"ID of the alert to dismiss"`
}

// DismissAlertOutput reports the upstream limitation: per-alert dismissal is
// not supported, so this never performs a network call.
type DismissAlertOutput struct {
	Status        string `json:"status"          jsonschema:"always unsupported"`
	AlertID       int64  `json:"alert_id"        jsonschema:"the requested alert ID"`
	Error         string `json:"error"           jsonschema:"description of the limitation"`
	Message       string `json:"message"         jsonschema:"guidance for the caller"`
	APILimitation bool   `json:"api_limitation"  jsonschema:"true: this is an upstream API limitation"`
}

func handleDismissAlert(client *rescuetime.Client) mcp.ToolHandlerFor[DismissAlertInput, DismissAlertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DismissAlertInput) (*mcp.CallToolResult, DismissAlertOutput, error) {
		result := client.DismissAlert(input.AlertID)
		return nil, DismissAlertOutput{
			Status:        result.Status,
			AlertID:       result.AlertID,
			Error:         result.Error,
			Message:       result.Message,
			APILimitation: result.APILimitation,
		}, nil
	}
}

// --- Highlights tools ---

// HighlightsFeedInput is the input for the get_highlights_feed tool.
type HighlightsFeedInput struct {
	RestrictBegin string `json:"restrict_begin,omitempty" jsonschema:"start date in YYYY-MM-DD format"`
	RestrictEnd   string `json:"restrict_end,omitempty"   jsonschema:"end date in YYYY-MM-DD format"`
}

// HighlightsFeedOutput is the output for the get_highlights_feed tool.
type HighlightsFeedOutput struct {
	Highlights []map[string]any `json:"highlights" jsonschema:"highlight records"`
	Count      int              `json:"count"      jsonschema:"number of highlights returned"`
	DateRange  DateRange        `json:"date_range" jsonschema:"echo of the requested date range"`
}

func handleHighlightsFeed(client *rescuetime.Client) mcp.ToolHandlerFor[HighlightsFeedInput, HighlightsFeedOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HighlightsFeedInput) (*mcp.CallToolResult, HighlightsFeedOutput, error) {
		begin, err := parseDateField("restrict_begin", input.RestrictBegin)
		if err != nil {
			return nil, HighlightsFeedOutput{}, err
		}
		end, err := parseDateField("restrict_end", input.RestrictEnd)
		if err != nil {
			return nil, HighlightsFeedOutput{}, err
		}

		highlights, err := client.HighlightsFeed(ctx, rescuetime.HighlightsFeedRequest{
			RestrictBegin: begin,
			RestrictEnd:   end,
		})
		if err != nil {
			return nil, HighlightsFeedOutput{}, fmt.Errorf("getting highlights feed: %w", err)
		}

		return nil, HighlightsFeedOutput{
			Highlights: highlights,
			Count:      len(highlights),
			DateRange:  DateRange{Begin: input.RestrictBegin, End: input.RestrictEnd},
		}, nil
	}
}

// PostHighlightInput is the input for the post_highlight tool.
type PostHighlightInput struct {
	HighlightDate string `json:"highlight_date"   jsonschema:"date for the highlight in YYYY-MM-DD format (required)"`
	Description   string `json:"description"      jsonschema:"description of the highlight (required)"`
	Source        string `json:"source,omitempty" jsonschema:"optional source information"`
}

// PostHighlightOutput is the output for the post_highlight tool.
type PostHighlightOutput struct {
	Status        string         `json:"status"           jsonschema:"posted on success"`
	HighlightDate string         `json:"highlight_date"   jsonschema:"echo of the highlight date"`
	Description   string         `json:"description"      jsonschema:"echo of the description"`
	Result        map[string]any `json:"result,omitempty" jsonschema:"upstream response body"`
}

func handlePostHighlight(client *rescuetime.Client) mcp.ToolHandlerFor[PostHighlightInput, PostHighlightOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PostHighlightInput) (*mcp.CallToolResult, PostHighlightOutput, error) {
		if input.Description == "" {
			return nil, PostHighlightOutput{}, errors.New("description is required")
		}
		date, err := rescuetime.ParseDate(input.HighlightDate)
		if err != nil {
			return nil, PostHighlightOutput{}, fmt.Errorf("invalid highlight_date: %w", err)
		}

		result, err := client.PostHighlight(ctx, rescuetime.HighlightPost{
			Date:        date,
			Description: input.Description,
			Source:      input.Source,
		})
		if err != nil {
			return nil, PostHighlightOutput{}, fmt.Errorf("posting highlight: %w", err)
		}

		return nil, PostHighlightOutput{
			Status:        "posted",
			HighlightDate: date.String(),
			Description:   input.Description,
			Result:        result,
		}, nil
	}
}

// --- Offline time tool ---

// PostOfflineTimeInput is the input for the post_offline_time tool.
type PostOfflineTimeInput struct {
	OfflineDate  string  `json:"offline_date"  jsonschema:"date for the offline time in YYYY-MM-DD format (required)"`
	OfflineHours float64 `json:"offline_hours" jsonschema:"number of offline hours, may be fractional (required)"`
	Description  string  `json:"description"   jsonschema:"what the offline time was spent on (required)"`
}

// PostOfflineTimeOutput is the output for the post_offline_time tool.
type PostOfflineTimeOutput struct {
	Status       string         `json:"status"           jsonschema:"posted on success"`
	OfflineDate  string         `json:"offline_date"     jsonschema:"echo of the offline date"`
	OfflineHours float64        `json:"offline_hours"    jsonschema:"echo of the hours posted"`
	Description  string         `json:"description"      jsonschema:"echo of the description"`
	Result       map[string]any `json:"result,omitempty" jsonschema:"upstream response body"`
}

func handlePostOfflineTime(client *rescuetime.Client) mcp.ToolHandlerFor[PostOfflineTimeInput, PostOfflineTimeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PostOfflineTimeInput) (*mcp.CallToolResult, PostOfflineTimeOutput, error) {
		if input.Description == "" {
			return nil, PostOfflineTimeOutput{}, errors.New("description is required")
		}
		if input.OfflineHours <= 0 {
			return nil, PostOfflineTimeOutput{}, fmt.Errorf("invalid offline_hours %v: must be greater than zero", input.OfflineHours)
		}
		date, err := rescuetime.ParseDate(input.OfflineDate)
		if err != nil {
			return nil, PostOfflineTimeOutput{}, fmt.Errorf("invalid offline_date: %w", err)
		}

		result, err := client.PostOfflineTime(ctx, rescuetime.OfflineTimePost{
			Date:        date,
			Hours:       input.OfflineHours,
			Description: input.Description,
		})
		if err != nil {
			return nil, PostOfflineTimeOutput{}, fmt.Errorf("posting offline time: %w", err)
		}

		return nil, PostOfflineTimeOutput{
			Status:       "posted",
			OfflineDate:  date.String(),
			OfflineHours: input.OfflineHours,
			Description:  input.Description,
			Result:       result,
		}, nil
	}
}

// --- Health check tool ---

// HealthCheckInput is the input for the health_check tool (no parameters needed).
type HealthCheckInput struct{}

// HealthCheckOutput is the output for the health_check tool.
type HealthCheckOutput struct {
	Healthy     bool   `json:"healthy"         jsonschema:"whether the API responded to a probe call"`
	Timestamp   string `json:"timestamp"       jsonschema:"when the check ran"`
	APIKeyValid bool   `json:"api_key_valid"   jsonschema:"whether the configured API key was accepted"`
	Error       string `json:"error,omitempty" jsonschema:"failure detail when unhealthy"`
}

func handleHealthCheck(client *rescuetime.Client) mcp.ToolHandlerFor[HealthCheckInput, HealthCheckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ HealthCheckInput) (*mcp.CallToolResult, HealthCheckOutput, error) {
		err := client.Ping(ctx)
		out := HealthCheckOutput{
			Healthy:     err == nil,
			Timestamp:   time.Now().Format(time.RFC3339),
			APIKeyValid: err == nil,
		}
		if err != nil {
			out.Error = err.Error()
		}
		return nil, out, nil
	}
}
