package rescuetime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultFocusDuration is applied when a focus session is started without an
// explicit duration, in minutes.
const DefaultFocusDuration = 30

// AnalyticData queries the analytic data endpoint.
func (c *Client) AnalyticData(ctx context.Context, req AnalyticDataRequest) (*AnalyticData, error) {
	resp, err := c.request(ctx, http.MethodGet, "data", req.params())
	if err != nil {
		return nil, err
	}
	var out AnalyticData
	if err := resp.decode(&out); err != nil {
		return nil, fmt.Errorf("analytic data: %w", err)
	}
	return &out, nil
}

// DailySummaryFeed fetches daily summaries, optionally scoped to a date range.
// The feed only has data for yesterday and earlier.
func (c *Client) DailySummaryFeed(ctx context.Context, req DailySummaryRequest) ([]DailySummary, error) {
	resp, err := c.request(ctx, http.MethodGet, "daily_summary_feed", req.params())
	if err != nil {
		return nil, err
	}
	var out []DailySummary
	if err := resp.decode(&out); err != nil {
		return nil, fmt.Errorf("daily summary feed: %w", err)
	}
	return out, nil
}

// LatestDailySummary fetches the summary for exactly yesterday. The feed lags
// about a day, so yesterday is the most recent day that can exist. Returns
// nil when no record is available; it deliberately does not scan further back.
func (c *Client) LatestDailySummary(ctx context.Context) (*DailySummary, error) {
	yesterday := Yesterday()
	summaries, err := c.DailySummaryFeed(ctx, DailySummaryRequest{
		RestrictBegin: yesterday,
		RestrictEnd:   yesterday,
	})
	if err != nil {
		return nil, err
	}
	want := yesterday.String()
	for i := range summaries {
		if summaries[i].Date == want {
			return &summaries[i], nil
		}
	}
	if len(summaries) > 0 {
		return &summaries[0], nil
	}
	return nil, nil
}

// ListAlerts fetches the alerts feed.
func (c *Client) ListAlerts(ctx context.Context) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("op", "list")
	resp, err := c.request(ctx, http.MethodGet, "alerts_feed", params)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := resp.decode(&out); err != nil {
		return nil, fmt.Errorf("alerts feed: %w", err)
	}
	return out, nil
}

// DismissAlerts posts the dismiss operation to the alerts feed. The upstream
// returns no structured body for this, so the result is synthesized from
// whatever text came back.
func (c *Client) DismissAlerts(ctx context.Context) (*ActionStatus, error) {
	params := url.Values{}
	params.Set("op", "dismiss")
	resp, err := c.request(ctx, http.MethodPost, "alerts_feed", params)
	if err != nil {
		return nil, err
	}

	status := &ActionStatus{
		Status:    "dismissed",
		Operation: "dismiss",
		Message:   "Alert dismissed successfully",
	}
	if resp.isJSON() {
		status.Result = resp.generic()
	} else if text := resp.text(); text != "" {
		status.Message = text
	}
	return status, nil
}

// DismissAlert reports that per-alert dismissal is not supported. The
// RescueTime API only supports reading alerts; this performs no network call.
func (c *Client) DismissAlert(alertID int64) *DismissUnsupported {
	return &DismissUnsupported{
		Status:        "unsupported",
		AlertID:       alertID,
		Error:         "Alert dismissal is not supported by the RescueTime API",
		Message:       "The RescueTime API only supports reading alerts, not dismissing them. Use the RescueTime web interface to dismiss alerts.",
		APILimitation: true,
	}
}

// HighlightsFeed fetches highlights, optionally scoped to a date range.
func (c *Client) HighlightsFeed(ctx context.Context, req HighlightsFeedRequest) ([]map[string]any, error) {
	resp, err := c.request(ctx, http.MethodGet, "highlights_feed", req.params())
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := resp.decode(&out); err != nil {
		return nil, fmt.Errorf("highlights feed: %w", err)
	}
	return out, nil
}

// PostHighlight records a highlight.
func (c *Client) PostHighlight(ctx context.Context, highlight HighlightPost) (map[string]any, error) {
	resp, err := c.request(ctx, http.MethodPost, "highlights_post", highlight.params())
	if err != nil {
		return nil, err
	}
	return resp.generic(), nil
}

// PostOfflineTime records a block of offline time.
func (c *Client) PostOfflineTime(ctx context.Context, offline OfflineTimePost) (map[string]any, error) {
	resp, err := c.request(ctx, http.MethodPost, "offline_time_post", offline.params())
	if err != nil {
		return nil, err
	}
	return resp.generic(), nil
}

// StartFocusSession starts a FocusTime session. A zero duration means
// unspecified and falls back to DefaultFocusDuration; -1 runs until the end
// of the day.
func (c *Client) StartFocusSession(ctx context.Context, duration int) (*ActionStatus, error) {
	if duration == 0 {
		duration = DefaultFocusDuration
	}
	params := url.Values{}
	params.Set("duration", strconv.Itoa(duration))
	resp, err := c.request(ctx, http.MethodPost, "start_focustime", params)
	if err != nil {
		return nil, err
	}

	status := &ActionStatus{
		Status:   "started",
		Duration: duration,
		Message:  "Focus session started successfully",
	}
	if resp.isJSON() {
		status.Result = resp.generic()
	} else if text := resp.text(); text != "" {
		status.Message = text
	}
	return status, nil
}

// EndFocusSession ends the current FocusTime session.
func (c *Client) EndFocusSession(ctx context.Context) (*ActionStatus, error) {
	resp, err := c.request(ctx, http.MethodPost, "end_focustime", nil)
	if err != nil {
		return nil, err
	}

	status := &ActionStatus{
		Status:  "ended",
		Message: "Focus session ended successfully",
	}
	if resp.isJSON() {
		status.Result = resp.generic()
	} else if text := resp.text(); text != "" {
		status.Message = text
	}
	return status, nil
}

// FocusSessionStatus derives the current session state from the focus
// session start event feed. A 404 from the upstream means no session data,
// not a failure.
func (c *Client) FocusSessionStatus(ctx context.Context) (*FocusStatus, error) {
	resp, err := c.request(ctx, http.MethodGet, "focustime_started_feed", nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return &FocusStatus{Active: false, Message: "No focus session data available"}, nil
		}
		return nil, err
	}

	var events []map[string]any
	if resp.isJSON() {
		if err := resp.decode(&events); err != nil {
			return nil, fmt.Errorf("focus session status: %w", err)
		}
	}
	if len(events) == 0 {
		return &FocusStatus{Active: false}, nil
	}
	return &FocusStatus{
		Active:        true,
		LatestSession: events[0],
		TotalSessions: len(events),
	}, nil
}

// Ping verifies the API key and service availability with one daily summary
// read and returns the typed failure, if any.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.DailySummaryFeed(ctx, DailySummaryRequest{})
	return err
}

// HealthCheck is the boolean view of Ping. All failures collapse to false;
// it never returns an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	return c.Ping(ctx) == nil
}
