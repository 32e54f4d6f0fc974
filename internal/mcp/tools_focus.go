package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// StartFocusSessionInput is the input for the start_focus_session tool.
type StartFocusSessionInput struct {
	Duration *int `json:"duration,omitempty" jsonschema:"session length in minutes: -1 for until end of day, or a positive multiple of 5 (default 30)"`
}

// FocusSessionOutput is the output for the focus session start/end tools.
type FocusSessionOutput struct {
	Status   string         `json:"status"             jsonschema:"started or ended"`
	Duration int            `json:"duration,omitempty" jsonschema:"session length in minutes, for starts"`
	Message  string         `json:"message,omitempty"  jsonschema:"upstream confirmation message"`
	Result   map[string]any `json:"result,omitempty"   jsonschema:"structured upstream response, when one was returned"`
}

func handleStartFocusSession(client *rescuetime.Client) mcp.ToolHandlerFor[StartFocusSessionInput, FocusSessionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StartFocusSessionInput) (*mcp.CallToolResult, FocusSessionOutput, error) {
		duration, err := validateFocusDuration(input.Duration)
		if err != nil {
			return nil, FocusSessionOutput{}, err
		}

		status, err := client.StartFocusSession(ctx, duration)
		if err != nil {
			return nil, FocusSessionOutput{}, fmt.Errorf("starting focus session: %w", err)
		}

		return nil, FocusSessionOutput{
			Status:   status.Status,
			Duration: status.Duration,
			Message:  status.Message,
			Result:   status.Result,
		}, nil
	}
}

// EndFocusSessionInput is the input for the end_focus_session tool
// (no parameters needed).
type EndFocusSessionInput struct{}

func handleEndFocusSession(client *rescuetime.Client) mcp.ToolHandlerFor[EndFocusSessionInput, FocusSessionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EndFocusSessionInput) (*mcp.CallToolResult, FocusSessionOutput, error) {
		status, err := client.EndFocusSession(ctx)
		if err != nil {
			return nil, FocusSessionOutput{}, fmt.Errorf("ending focus session: %w", err)
		}

		return nil, FocusSessionOutput{
			Status:  status.Status,
			Message: status.Message,
			Result:  status.Result,
		}, nil
	}
}

// FocusSessionStatusInput is the input for the get_focus_session_status tool
// (no parameters needed).
type FocusSessionStatusInput struct{}

// FocusSessionStatusOutput is the derived active/inactive view over the
// focus session event feed.
type FocusSessionStatusOutput struct {
	Active        bool           `json:"active"            jsonschema:"whether a recent focus session event exists"`
	LatestSession map[string]any `json:"latest_session"    jsonschema:"most recent session event, null when inactive"`
	TotalSessions int            `json:"total_sessions"    jsonschema:"number of recent session events"`
	Message       string         `json:"message,omitempty" jsonschema:"explanation when no session data exists"`
}

func handleFocusSessionStatus(client *rescuetime.Client) mcp.ToolHandlerFor[FocusSessionStatusInput, FocusSessionStatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ FocusSessionStatusInput) (*mcp.CallToolResult, FocusSessionStatusOutput, error) {
		status, err := client.FocusSessionStatus(ctx)
		if err != nil {
			return nil, FocusSessionStatusOutput{}, fmt.Errorf("getting focus session status: %w", err)
		}

		return nil, FocusSessionStatusOutput{
			Active:        status.Active,
			LatestSession: status.LatestSession,
			TotalSessions: status.TotalSessions,
			Message:       status.Message,
		}, nil
	}
}
