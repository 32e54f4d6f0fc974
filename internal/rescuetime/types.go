package rescuetime

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Perspective selects the shape of analytic rows: ranked totals or
// time-interval breakdown.
type Perspective string

// Supported perspectives.
const (
	PerspectiveRank     Perspective = "rank"
	PerspectiveInterval Perspective = "interval"
)

// Valid reports whether the perspective is one RescueTime accepts.
func (p Perspective) Valid() bool {
	return p == PerspectiveRank || p == PerspectiveInterval
}

// Resolution is the time bucket size for interval queries.
type Resolution string

// Supported resolutions.
const (
	ResolutionMinute Resolution = "minute"
	ResolutionHour   Resolution = "hour"
	ResolutionDay    Resolution = "day"
	ResolutionWeek   Resolution = "week"
	ResolutionMonth  Resolution = "month"
)

// Valid reports whether the resolution is one RescueTime accepts.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionMinute, ResolutionHour, ResolutionDay, ResolutionWeek, ResolutionMonth:
		return true
	}
	return false
}

// RestrictKind is the filter axis narrowing an analytic query.
type RestrictKind string

// Supported restrict kinds.
const (
	RestrictCategory     RestrictKind = "category"
	RestrictActivity     RestrictKind = "activity"
	RestrictProductivity RestrictKind = "productivity"
	RestrictDocument     RestrictKind = "document"
	RestrictOverview     RestrictKind = "overview"
)

// Valid reports whether the restrict kind is one RescueTime accepts.
func (k RestrictKind) Valid() bool {
	switch k {
	case RestrictCategory, RestrictActivity, RestrictProductivity, RestrictDocument, RestrictOverview:
		return true
	}
	return false
}

// ProductivityLevel is RescueTime's -2..2 productivity scale.
type ProductivityLevel int

// Productivity levels from very distracting to very productive.
const (
	VeryDistracting ProductivityLevel = -2
	Distracting     ProductivityLevel = -1
	Neutral         ProductivityLevel = 0
	Productive      ProductivityLevel = 1
	VeryProductive  ProductivityLevel = 2
)

// Label returns the human-readable name for the level.
func (l ProductivityLevel) Label() string {
	switch l {
	case VeryDistracting:
		return "very distracting"
	case Distracting:
		return "distracting"
	case Neutral:
		return "neutral"
	case Productive:
		return "productive"
	case VeryProductive:
		return "very productive"
	}
	return fmt.Sprintf("level %d", int(l))
}

// dateFormat is the only date format the RescueTime API accepts.
const dateFormat = "2006-01-02"

// Date is a calendar date. It serializes to YYYY-MM-DD on the wire; the zero
// value means "unset" and is dropped from request parameters.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// Yesterday returns the calendar date one day before today.
func Yesterday() Date {
	return DateOf(time.Now().AddDate(0, 0, -1))
}

// ParseDate parses a YYYY-MM-DD string. Any other format is rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be in YYYY-MM-DD format", s)
	}
	return Date{t: t}, nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(dateFormat)
}

// AnalyticDataRequest holds parameters for the analytic data endpoint.
// Zero-valued optional fields are omitted from the request.
type AnalyticDataRequest struct {
	Perspective     Perspective // defaults to rank
	Resolution      Resolution  // defaults to hour
	RestrictBegin   Date
	RestrictEnd     Date
	RestrictKind    RestrictKind
	RestrictProject string
	RestrictThing   string
}

func (r AnalyticDataRequest) params() url.Values {
	perspective := r.Perspective
	if perspective == "" {
		perspective = PerspectiveRank
	}
	resolution := r.Resolution
	if resolution == "" {
		resolution = ResolutionHour
	}

	params := url.Values{}
	params.Set("perspective", string(perspective))
	params.Set("resolution_time", string(resolution))
	setDate(params, "restrict_begin", r.RestrictBegin)
	setDate(params, "restrict_end", r.RestrictEnd)
	if r.RestrictKind != "" {
		params.Set("restrict_kind", string(r.RestrictKind))
	}
	if r.RestrictProject != "" {
		params.Set("restrict_project", r.RestrictProject)
	}
	if r.RestrictThing != "" {
		params.Set("restrict_thing", r.RestrictThing)
	}
	return params
}

// DailySummaryRequest holds the optional date range for the daily summary feed.
type DailySummaryRequest struct {
	RestrictBegin Date
	RestrictEnd   Date
}

func (r DailySummaryRequest) params() url.Values {
	params := url.Values{}
	setDate(params, "restrict_begin", r.RestrictBegin)
	setDate(params, "restrict_end", r.RestrictEnd)
	return params
}

// HighlightsFeedRequest holds the optional date range for the highlights feed.
type HighlightsFeedRequest struct {
	RestrictBegin Date
	RestrictEnd   Date
}

func (r HighlightsFeedRequest) params() url.Values {
	params := url.Values{}
	setDate(params, "restrict_begin", r.RestrictBegin)
	setDate(params, "restrict_end", r.RestrictEnd)
	return params
}

// HighlightPost is a highlight to record for a given day.
type HighlightPost struct {
	Date        Date
	Description string
	Source      string
}

func (h HighlightPost) params() url.Values {
	params := url.Values{}
	setDate(params, "highlight_date", h.Date)
	params.Set("description", h.Description)
	if h.Source != "" {
		params.Set("source", h.Source)
	}
	return params
}

// OfflineTimePost is a block of offline time to record for a given day.
type OfflineTimePost struct {
	Date        Date
	Hours       float64
	Description string
}

func (o OfflineTimePost) params() url.Values {
	params := url.Values{}
	setDate(params, "offline_date", o.Date)
	params.Set("offline_hours", strconv.FormatFloat(o.Hours, 'f', -1, 64))
	params.Set("description", o.Description)
	return params
}

// setDate adds a date parameter unless the date is unset.
func setDate(params url.Values, name string, d Date) {
	if !d.IsZero() {
		params.Set(name, d.String())
	}
}

// DailySummary is one record from the daily summary feed. The feed lags
// roughly a day behind, so summaries exist for yesterday and earlier only.
type DailySummary struct {
	ID                        int64   `json:"id"`
	Date                      string  `json:"date"`
	ProductivityPulse         int     `json:"productivity_pulse"`
	VeryProductivePercentage  float64 `json:"very_productive_percentage"`
	ProductivePercentage      float64 `json:"productive_percentage"`
	NeutralPercentage         float64 `json:"neutral_percentage"`
	DistractingPercentage     float64 `json:"distracting_percentage"`
	VeryDistractingPercentage float64 `json:"very_distracting_percentage"`
	AllProductivePercentage   float64 `json:"all_productive_percentage"`
	AllDistractingPercentage  float64 `json:"all_distracting_percentage"`
	UncategorizedPercentage   float64 `json:"uncategorized_percentage"`
	BusinessHours             float64 `json:"business_hours"`
	TotalHours                float64 `json:"total_hours"`
}

// AnalyticData is the raw analytic data response: column headers plus
// positionally encoded rows.
type AnalyticData struct {
	Notes      string   `json:"notes"`
	RowHeaders []string `json:"row_headers"`
	Rows       [][]any  `json:"rows"`
}

// ActivityRow is one decoded rank-perspective analytic row:
// [Rank, Time Spent (seconds), Number of People, Activity, Category, Productivity].
type ActivityRow struct {
	Rank         int               `json:"rank"`
	Seconds      int               `json:"seconds"`
	People       int               `json:"people"`
	Activity     string            `json:"activity"`
	Category     string            `json:"category"`
	Productivity ProductivityLevel `json:"productivity"`
}

// Activities decodes the positional rows into typed activity rows.
// Rows that do not match the rank-perspective shape are skipped.
func (d *AnalyticData) Activities() []ActivityRow {
	rows := make([]ActivityRow, 0, len(d.Rows))
	for _, row := range d.Rows {
		if len(row) < 6 {
			continue
		}
		rows = append(rows, ActivityRow{
			Rank:         asInt(row[0]),
			Seconds:      asInt(row[1]),
			People:       asInt(row[2]),
			Activity:     asString(row[3]),
			Category:     asString(row[4]),
			Productivity: ProductivityLevel(asInt(row[5])),
		})
	}
	return rows
}

// asInt converts a decoded JSON value to int. JSON numbers arrive as float64.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// ActionStatus is the synthesized envelope for action endpoints
// (focus start/end, alert dismissal) whose upstream responses are
// plain text or empty.
type ActionStatus struct {
	Status    string         `json:"status"`
	Operation string         `json:"operation,omitempty"`
	Duration  int            `json:"duration,omitempty"`
	Message   string         `json:"message,omitempty"`
	Result    map[string]any `json:"result,omitempty"`
}

// FocusStatus is the derived active/inactive view over the focus session
// event feed.
type FocusStatus struct {
	Active        bool           `json:"active"`
	LatestSession map[string]any `json:"latest_session"`
	TotalSessions int            `json:"total_sessions"`
	Message       string         `json:"message,omitempty"`
}

// DismissUnsupported reports the upstream limitation that alerts cannot be
// dismissed by ID through the API.
type DismissUnsupported struct {
	Status        string `json:"status"`
	AlertID       int64  `json:"alert_id"`
	Error         string `json:"error"`
	Message       string `json:"message"`
	APILimitation bool   `json:"api_limitation"`
}
