// Package rescuetime provides a minimal client for the RescueTime REST API.
// Each method performs exactly one HTTP round trip; there is no caching and
// no retry.
package rescuetime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client defaults.
const (
	DefaultBaseURL = "https://www.rescuetime.com/anapi"
	DefaultTimeout = 30 * time.Second

	userAgent = "rescuetime-mcp/1.0"
)

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the RescueTime API. It is safe for concurrent use: every
// call is an independent request/response cycle over the shared transport.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient HTTPDoer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests and proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the fixed per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient injects a custom HTTP client or test double.
// When set, WithTimeout has no effect.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// New creates a client for the given API key.
func New(apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	}
	return client
}

// Close releases idle connections held by the underlying transport.
// The client must not be used afterward.
func (c *Client) Close() {
	if hc, ok := c.httpClient.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}

// APIError is the typed failure for RescueTime calls. StatusCode is zero when
// the failure happened before an HTTP status was received (DNS, timeout,
// connection reset).
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("rescuetime: HTTP %d: %s", e.StatusCode, truncate(e.Body, 500))
	}
	return fmt.Sprintf("rescuetime: request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error for errors.Is/errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// truncate caps the error body to avoid leaking large payloads into messages.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// apiResponse is the raw outcome of a successful (2xx) call.
type apiResponse struct {
	body        []byte
	contentType string
}

func (r *apiResponse) isJSON() bool {
	return strings.Contains(r.contentType, "application/json")
}

// decode unmarshals a JSON body into v.
func (r *apiResponse) decode(v any) error {
	if !r.isJSON() {
		return fmt.Errorf("unexpected content type %q", r.contentType)
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// generic returns the response as a map: the parsed JSON object when the
// body is one, otherwise the {response, content_type} shape for text bodies.
func (r *apiResponse) generic() map[string]any {
	if r.isJSON() {
		var m map[string]any
		if err := json.Unmarshal(r.body, &m); err == nil {
			return m
		}
	}
	return map[string]any{
		"response":     strings.TrimSpace(string(r.body)),
		"content_type": r.contentType,
	}
}

// text returns the trimmed body for non-JSON action responses.
func (r *apiResponse) text() string {
	return strings.TrimSpace(string(r.body))
}

// request performs one HTTP call against the API. The API key and the JSON
// format selector are always injected. GET sends params as the query string;
// POST sends them form-encoded in the body.
func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values) (*apiResponse, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	params.Set("format", "json")

	endpointURL := c.baseURL + "/" + endpoint

	var req *http.Request
	var err error
	switch method {
	case http.MethodGet:
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpointURL+"?"+params.Encode(), nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &apiResponse{
		body:        body,
		contentType: strings.ToLower(resp.Header.Get("Content-Type")),
	}, nil
}
