//nolint:bodyclose // Test file uses mock responses with NopCloser bodies
package rescuetime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

// mockHTTPDoer implements HTTPDoer for testing. It records every request it
// receives so tests can assert on the wire format.
type mockHTTPDoer struct {
	response *http.Response
	err      error
	lastReq  *http.Request
	calls    int
}

func (m *mockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

// mockResponse creates a mock JSON response with the given status and body.
// The body uses io.NopCloser so no explicit close is required.
func mockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// mockTextResponse creates a mock plain-text response.
func mockTextResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newTestClient(doer *mockHTTPDoer) *Client {
	return New("test-key", WithHTTPClient(doer))
}

func TestRequest_GetInjectsKeyAndFormat(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `{"rows": []}`)}
	client := newTestClient(doer)

	_, err := client.AnalyticData(context.Background(), AnalyticDataRequest{})
	if err != nil {
		t.Fatalf("AnalyticData() error = %v", err)
	}

	if doer.lastReq.Method != http.MethodGet {
		t.Errorf("method = %s, want GET", doer.lastReq.Method)
	}
	query := doer.lastReq.URL.Query()
	if got := query.Get("key"); got != "test-key" {
		t.Errorf("key = %q, want %q", got, "test-key")
	}
	if got := query.Get("format"); got != "json" {
		t.Errorf("format = %q, want %q", got, "json")
	}
	if got := query.Get("perspective"); got != "rank" {
		t.Errorf("perspective = %q, want default %q", got, "rank")
	}
	if got := query.Get("resolution_time"); got != "hour" {
		t.Errorf("resolution_time = %q, want default %q", got, "hour")
	}
}

func TestRequest_PostFormEncodesBody(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(200, "")}
	client := newTestClient(doer)

	_, err := client.StartFocusSession(context.Background(), 25)
	if err != nil {
		t.Fatalf("StartFocusSession() error = %v", err)
	}

	req := doer.lastReq
	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	if req.URL.RawQuery != "" {
		t.Errorf("query = %q, want empty for POST", req.URL.RawQuery)
	}
	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form encoding", got)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("reading request body: %v", err)
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		t.Fatalf("parsing form body: %v", err)
	}
	if got := form.Get("key"); got != "test-key" {
		t.Errorf("key = %q, want %q", got, "test-key")
	}
	if got := form.Get("format"); got != "json" {
		t.Errorf("format = %q, want %q", got, "json")
	}
	if got := form.Get("duration"); got != "25" {
		t.Errorf("duration = %q, want %q", got, "25")
	}
}

func TestRequest_HTTPError(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(401, "invalid key")}
	client := newTestClient(doer)

	_, err := client.AnalyticData(context.Background(), AnalyticDataRequest{})
	if err == nil {
		t.Fatal("AnalyticData() expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "HTTP 401") {
		t.Errorf("error = %q, want to contain 'HTTP 401'", apiErr.Error())
	}
	if !strings.Contains(apiErr.Error(), "invalid key") {
		t.Errorf("error = %q, want to contain response body", apiErr.Error())
	}
}

func TestRequest_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	doer := &mockHTTPDoer{err: cause}
	client := newTestClient(doer)

	_, err := client.AnalyticData(context.Background(), AnalyticDataRequest{})
	if err == nil {
		t.Fatal("AnalyticData() expected error for transport failure")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport failure", apiErr.StatusCode)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped transport error to match errors.Is")
	}
	if !strings.Contains(apiErr.Error(), "request failed") {
		t.Errorf("error = %q, want to contain 'request failed'", apiErr.Error())
	}
}

func TestAnalyticData_DecodesRows(t *testing.T) {
	responseJSON := `{
		"notes": "data is an array of arrays",
		"row_headers": ["Rank", "Time Spent (seconds)", "Number of People", "Activity", "Category", "Productivity"],
		"rows": [
			[1, 7200, 1, "VS Code", "Editing", 2],
			[2, 1800, 1, "twitter.com", "Social Media", -2]
		]
	}`
	doer := &mockHTTPDoer{response: mockResponse(200, responseJSON)}
	client := newTestClient(doer)

	data, err := client.AnalyticData(context.Background(), AnalyticDataRequest{})
	if err != nil {
		t.Fatalf("AnalyticData() error = %v", err)
	}

	rows := data.Activities()
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Activity != "VS Code" || rows[0].Seconds != 7200 || rows[0].Productivity != VeryProductive {
		t.Errorf("rows[0] = %+v, want VS Code / 7200s / very productive", rows[0])
	}
	if rows[1].Activity != "twitter.com" || rows[1].Productivity != VeryDistracting {
		t.Errorf("rows[1] = %+v, want twitter.com / very distracting", rows[1])
	}
}

func TestAnalyticData_SkipsMalformedRows(t *testing.T) {
	responseJSON := `{"rows": [[1, 60], [1, 3600, 1, "VS Code", "Editing", 2]]}`
	doer := &mockHTTPDoer{response: mockResponse(200, responseJSON)}
	client := newTestClient(doer)

	data, err := client.AnalyticData(context.Background(), AnalyticDataRequest{})
	if err != nil {
		t.Fatalf("AnalyticData() error = %v", err)
	}
	rows := data.Activities()
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (short row skipped)", len(rows))
	}
	if rows[0].Activity != "VS Code" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "VS Code")
	}
}

func TestLatestDailySummary_MatchesYesterday(t *testing.T) {
	yesterday := Yesterday().String()
	responseJSON := fmt.Sprintf(`[{"id": 1, "date": %q, "productivity_pulse": 72, "total_hours": 6.5}]`, yesterday)
	doer := &mockHTTPDoer{response: mockResponse(200, responseJSON)}
	client := newTestClient(doer)

	summary, err := client.LatestDailySummary(context.Background())
	if err != nil {
		t.Fatalf("LatestDailySummary() error = %v", err)
	}
	if summary == nil {
		t.Fatal("LatestDailySummary() = nil, want summary")
	}
	if summary.Date != yesterday {
		t.Errorf("Date = %q, want %q", summary.Date, yesterday)
	}
	if summary.ProductivityPulse != 72 {
		t.Errorf("ProductivityPulse = %d, want 72", summary.ProductivityPulse)
	}

	query := doer.lastReq.URL.Query()
	if got := query.Get("restrict_begin"); got != yesterday {
		t.Errorf("restrict_begin = %q, want %q", got, yesterday)
	}
	if got := query.Get("restrict_end"); got != yesterday {
		t.Errorf("restrict_end = %q, want %q", got, yesterday)
	}
}

func TestLatestDailySummary_NoData(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `[]`)}
	client := newTestClient(doer)

	summary, err := client.LatestDailySummary(context.Background())
	if err != nil {
		t.Fatalf("LatestDailySummary() error = %v", err)
	}
	if summary != nil {
		t.Errorf("LatestDailySummary() = %+v, want nil for empty feed", summary)
	}
}

func TestDismissAlerts_TextResponse(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(200, "ok")}
	client := newTestClient(doer)

	status, err := client.DismissAlerts(context.Background())
	if err != nil {
		t.Fatalf("DismissAlerts() error = %v", err)
	}
	if status.Status != "dismissed" {
		t.Errorf("Status = %q, want %q", status.Status, "dismissed")
	}
	if status.Operation != "dismiss" {
		t.Errorf("Operation = %q, want %q", status.Operation, "dismiss")
	}
	if status.Message != "ok" {
		t.Errorf("Message = %q, want upstream text %q", status.Message, "ok")
	}

	if doer.lastReq.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", doer.lastReq.Method)
	}
	body, _ := io.ReadAll(doer.lastReq.Body)
	form, _ := url.ParseQuery(string(body))
	if got := form.Get("op"); got != "dismiss" {
		t.Errorf("op = %q, want %q", got, "dismiss")
	}
}

func TestDismissAlert_NoNetworkCall(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `{}`)}
	client := newTestClient(doer)

	result := client.DismissAlert(42)
	if doer.calls != 0 {
		t.Errorf("HTTP calls = %d, want 0 (dismissal is not supported upstream)", doer.calls)
	}
	if result.Status != "unsupported" {
		t.Errorf("Status = %q, want %q", result.Status, "unsupported")
	}
	if result.AlertID != 42 {
		t.Errorf("AlertID = %d, want 42", result.AlertID)
	}
	if !result.APILimitation {
		t.Error("APILimitation = false, want true")
	}
}

func TestStartFocusSession_DefaultDuration(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(200, "")}
	client := newTestClient(doer)

	status, err := client.StartFocusSession(context.Background(), 0)
	if err != nil {
		t.Fatalf("StartFocusSession() error = %v", err)
	}
	if status.Duration != DefaultFocusDuration {
		t.Errorf("Duration = %d, want default %d", status.Duration, DefaultFocusDuration)
	}
	if status.Status != "started" {
		t.Errorf("Status = %q, want %q", status.Status, "started")
	}

	body, _ := io.ReadAll(doer.lastReq.Body)
	form, _ := url.ParseQuery(string(body))
	if got := form.Get("duration"); got != "30" {
		t.Errorf("duration = %q, want %q", got, "30")
	}
}

func TestEndFocusSession(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(200, "FocusTime ended")}
	client := newTestClient(doer)

	status, err := client.EndFocusSession(context.Background())
	if err != nil {
		t.Fatalf("EndFocusSession() error = %v", err)
	}
	if status.Status != "ended" {
		t.Errorf("Status = %q, want %q", status.Status, "ended")
	}
	if status.Message != "FocusTime ended" {
		t.Errorf("Message = %q, want upstream text", status.Message)
	}
}

func TestFocusSessionStatus(t *testing.T) {
	tests := []struct {
		name        string
		response    *http.Response
		wantActive  bool
		wantLatest  bool
		wantTotal   int
		wantMessage string
	}{
		{
			name:        "404 means no session data, not an error",
			response:    mockTextResponse(404, "not found"),
			wantActive:  false,
			wantMessage: "No focus session data available",
		},
		{
			name:       "empty feed means inactive",
			response:   mockResponse(200, `[]`),
			wantActive: false,
		},
		{
			name:       "events mean active session",
			response:   mockResponse(200, `[{"id": 7, "created_at": "2026-08-29T10:00:00"}, {"id": 6}]`),
			wantActive: true,
			wantLatest: true,
			wantTotal:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(&mockHTTPDoer{response: tt.response})

			status, err := client.FocusSessionStatus(context.Background())
			if err != nil {
				t.Fatalf("FocusSessionStatus() error = %v", err)
			}
			if status.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", status.Active, tt.wantActive)
			}
			if tt.wantLatest && status.LatestSession == nil {
				t.Error("LatestSession = nil, want latest event")
			}
			if status.TotalSessions != tt.wantTotal {
				t.Errorf("TotalSessions = %d, want %d", status.TotalSessions, tt.wantTotal)
			}
			if tt.wantMessage != "" && status.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", status.Message, tt.wantMessage)
			}
		})
	}
}

func TestFocusSessionStatus_ServerError(t *testing.T) {
	client := newTestClient(&mockHTTPDoer{response: mockTextResponse(500, "internal error")})

	_, err := client.FocusSessionStatus(context.Background())
	if err == nil {
		t.Fatal("FocusSessionStatus() expected error for 500 response")
	}
}

func TestPostHighlight_NonJSONResponse(t *testing.T) {
	doer := &mockHTTPDoer{response: mockTextResponse(200, "highlight saved")}
	client := newTestClient(doer)

	result, err := client.PostHighlight(context.Background(), HighlightPost{
		Date:        NewDate(2026, 8, 29),
		Description: "Shipped the release",
		Source:      "cli",
	})
	if err != nil {
		t.Fatalf("PostHighlight() error = %v", err)
	}
	if got := result["response"]; got != "highlight saved" {
		t.Errorf("response = %v, want upstream text", got)
	}
	if got := result["content_type"]; got != "text/plain" {
		t.Errorf("content_type = %v, want text/plain", got)
	}

	body, _ := io.ReadAll(doer.lastReq.Body)
	form, _ := url.ParseQuery(string(body))
	if got := form.Get("highlight_date"); got != "2026-08-29" {
		t.Errorf("highlight_date = %q, want %q", got, "2026-08-29")
	}
	if got := form.Get("description"); got != "Shipped the release" {
		t.Errorf("description = %q, want highlight text", got)
	}
	if got := form.Get("source"); got != "cli" {
		t.Errorf("source = %q, want %q", got, "cli")
	}
}

func TestPostOfflineTime_Params(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `{"status": "ok"}`)}
	client := newTestClient(doer)

	result, err := client.PostOfflineTime(context.Background(), OfflineTimePost{
		Date:        NewDate(2026, 8, 29),
		Hours:       1.5,
		Description: "Lunch meeting",
	})
	if err != nil {
		t.Fatalf("PostOfflineTime() error = %v", err)
	}
	if got := result["status"]; got != "ok" {
		t.Errorf("status = %v, want ok", got)
	}

	body, _ := io.ReadAll(doer.lastReq.Body)
	form, _ := url.ParseQuery(string(body))
	if got := form.Get("offline_date"); got != "2026-08-29" {
		t.Errorf("offline_date = %q, want %q", got, "2026-08-29")
	}
	if got := form.Get("offline_hours"); got != "1.5" {
		t.Errorf("offline_hours = %q, want %q", got, "1.5")
	}
}

func TestListAlerts(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `[{"id": 1, "description": "Over 2 hours on social media"}]`)}
	client := newTestClient(doer)

	alerts, err := client.ListAlerts(context.Background())
	if err != nil {
		t.Fatalf("ListAlerts() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	if got := doer.lastReq.URL.Query().Get("op"); got != "list" {
		t.Errorf("op = %q, want %q", got, "list")
	}
}

func TestPing(t *testing.T) {
	client := newTestClient(&mockHTTPDoer{response: mockResponse(200, `[]`)})
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}

	client = newTestClient(&mockHTTPDoer{response: mockTextResponse(401, "invalid key")})
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping() error = nil, want error for 401")
	}
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(&mockHTTPDoer{response: mockResponse(200, `[]`)})
	if !client.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = false, want true")
	}

	client = newTestClient(&mockHTTPDoer{err: errors.New("connection refused")})
	if client.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = true, want false for transport failure")
	}
}

func TestWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	doer := &mockHTTPDoer{response: mockResponse(200, `[]`)}
	client := New("test-key", WithBaseURL("https://example.com/anapi/"), WithHTTPClient(doer))

	_, err := client.ListAlerts(context.Background())
	if err != nil {
		t.Fatalf("ListAlerts() error = %v", err)
	}
	if got := doer.lastReq.URL.Path; got != "/anapi/alerts_feed" {
		t.Errorf("path = %q, want %q", got, "/anapi/alerts_feed")
	}
}

func TestWithTimeout_IgnoresNonPositive(t *testing.T) {
	client := New("test-key", WithTimeout(-1*time.Second))
	if client.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want default %v", client.timeout, DefaultTimeout)
	}

	client = New("test-key", WithTimeout(5*time.Second))
	if client.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.timeout)
	}
}
