package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// --- Analytic data tool ---

// AnalyticDataInput is the input for the get_analytic_data tool.
type AnalyticDataInput struct {
	Perspective     string `json:"perspective,omitempty"      jsonschema:"data perspective: rank or interval (default rank)"`
	ResolutionTime  string `json:"resolution_time,omitempty"  jsonschema:"time resolution: minute, hour, day, week, or month (default hour)"`
	RestrictBegin   string `json:"restrict_begin,omitempty"   jsonschema:"start date in YYYY-MM-DD format"`
	RestrictEnd     string `json:"restrict_end,omitempty"     jsonschema:"end date in YYYY-MM-DD format"`
	RestrictKind    string `json:"restrict_kind,omitempty"    jsonschema:"restrict by category, activity, productivity, document, or overview"`
	RestrictProject string `json:"restrict_project,omitempty" jsonschema:"filter by a specific project name"`
	RestrictThing   string `json:"restrict_thing,omitempty"   jsonschema:"filter by a specific activity or category name"`
}

// AnalyticDataOutput is the output for the get_analytic_data tool: the raw
// column headers and positionally encoded rows from the API.
type AnalyticDataOutput struct {
	Notes      string   `json:"notes,omitempty" jsonschema:"upstream notes about the period"`
	RowHeaders []string `json:"row_headers"     jsonschema:"column names for the rows"`
	Rows       [][]any  `json:"rows"            jsonschema:"positionally encoded data rows"`
	RowCount   int      `json:"row_count"       jsonschema:"number of rows returned"`
}

func handleAnalyticData(client *rescuetime.Client) mcp.ToolHandlerFor[AnalyticDataInput, AnalyticDataOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyticDataInput) (*mcp.CallToolResult, AnalyticDataOutput, error) {
		req, err := buildAnalyticRequest(input)
		if err != nil {
			return nil, AnalyticDataOutput{}, err
		}

		data, err := client.AnalyticData(ctx, req)
		if err != nil {
			return nil, AnalyticDataOutput{}, fmt.Errorf("getting analytic data: %w", err)
		}

		return nil, AnalyticDataOutput{
			Notes:      data.Notes,
			RowHeaders: data.RowHeaders,
			Rows:       data.Rows,
			RowCount:   len(data.Rows),
		}, nil
	}
}

// buildAnalyticRequest validates the scalar inputs into a typed request.
func buildAnalyticRequest(input AnalyticDataInput) (rescuetime.AnalyticDataRequest, error) {
	var req rescuetime.AnalyticDataRequest
	var err error

	if req.Perspective, err = parsePerspective(input.Perspective); err != nil {
		return req, err
	}
	if req.Resolution, err = parseResolution(input.ResolutionTime); err != nil {
		return req, err
	}
	if req.RestrictKind, err = parseRestrictKind(input.RestrictKind); err != nil {
		return req, err
	}
	if req.RestrictBegin, err = parseDateField("restrict_begin", input.RestrictBegin); err != nil {
		return req, err
	}
	if req.RestrictEnd, err = parseDateField("restrict_end", input.RestrictEnd); err != nil {
		return req, err
	}
	req.RestrictProject = input.RestrictProject
	req.RestrictThing = input.RestrictThing
	return req, nil
}

// --- Top distractions tool ---

// defaultDistractionLimit caps the distraction list when no limit is given.
const defaultDistractionLimit = 5

// TopDistractionsInput is the input for the get_top_distractions tool.
type TopDistractionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of distractions to return (default 5)"`
}

// Distraction is one distracting activity with its time spent.
type Distraction struct {
	Activity         string  `json:"activity"           jsonschema:"activity name"`
	Category         string  `json:"category"           jsonschema:"activity category"`
	Productivity     int     `json:"productivity"       jsonschema:"productivity level (-1 or -2)"`
	TimeSpentSeconds int     `json:"time_spent_seconds" jsonschema:"time spent in seconds"`
	TimeSpentMinutes float64 `json:"time_spent_minutes" jsonschema:"time spent in minutes"`
}

// TopDistractionsOutput is the output for the get_top_distractions tool.
// Totals cover all of today's distracting time, not only the listed entries.
type TopDistractionsOutput struct {
	Date         string        `json:"date"          jsonschema:"date the rows cover (today)"`
	Distractions []Distraction `json:"distractions"  jsonschema:"most distracting activities, by time spent"`
	Count        int           `json:"count"         jsonschema:"number of entries returned"`
	TotalMinutes float64       `json:"total_minutes" jsonschema:"total distracting minutes today"`
	TotalHours   float64       `json:"total_hours"   jsonschema:"total distracting hours today"`
}

func handleTopDistractions(client *rescuetime.Client) mcp.ToolHandlerFor[TopDistractionsInput, TopDistractionsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TopDistractionsInput) (*mcp.CallToolResult, TopDistractionsOutput, error) {
		limit := input.Limit
		if limit < 0 {
			return nil, TopDistractionsOutput{}, fmt.Errorf("invalid limit %d: must be positive", input.Limit)
		}
		if limit == 0 {
			limit = defaultDistractionLimit
		}

		rows, today, err := todayActivities(ctx, client)
		if err != nil {
			return nil, TopDistractionsOutput{}, fmt.Errorf("getting top distractions: %w", err)
		}

		top, totalSeconds := rescuetime.TopDistractions(rows, limit)
		distractions := make([]Distraction, 0, len(top))
		for _, row := range top {
			distractions = append(distractions, Distraction{
				Activity:         row.Activity,
				Category:         row.Category,
				Productivity:     int(row.Productivity),
				TimeSpentSeconds: row.Seconds,
				TimeSpentMinutes: rescuetime.Minutes(row.Seconds),
			})
		}

		return nil, TopDistractionsOutput{
			Date:         today.String(),
			Distractions: distractions,
			Count:        len(distractions),
			TotalMinutes: rescuetime.Minutes(totalSeconds),
			TotalHours:   rescuetime.Hours(totalSeconds),
		}, nil
	}
}

// --- Productivity score tool ---

// ProductivityScoreInput is the input for the get_productivity_score tool
// (no parameters needed).
type ProductivityScoreInput struct{}

// LevelBreakdown is the time spent at one productivity level.
type LevelBreakdown struct {
	Level      int     `json:"level"      jsonschema:"productivity level (-2 to 2)"`
	Label      string  `json:"label"      jsonschema:"human-readable level name"`
	Seconds    int     `json:"seconds"    jsonschema:"time spent at this level in seconds"`
	Hours      float64 `json:"hours"      jsonschema:"time spent at this level in hours"`
	Percentage float64 `json:"percentage" jsonschema:"share of total tracked time"`
}

// ProductivityScoreOutput is the output for the get_productivity_score tool.
type ProductivityScoreOutput struct {
	Date             string           `json:"date"              jsonschema:"date the score covers (today)"`
	Pulse            int              `json:"pulse"             jsonschema:"weighted productivity score, 0-100"`
	Rating           string           `json:"rating"            jsonschema:"Excellent, Good, Fair, or Needs Improvement"`
	TotalHours       float64          `json:"total_hours"       jsonschema:"total tracked hours"`
	ProductiveHours  float64          `json:"productive_hours"  jsonschema:"hours at productive levels (1 and 2)"`
	DistractingHours float64          `json:"distracting_hours" jsonschema:"hours at distracting levels (-1 and -2)"`
	NeutralHours     float64          `json:"neutral_hours"     jsonschema:"hours at the neutral level"`
	Levels           []LevelBreakdown `json:"levels"            jsonschema:"per-level time breakdown"`
}

// scoreLevels orders the breakdown from very productive to very distracting.
var scoreLevels = []rescuetime.ProductivityLevel{
	rescuetime.VeryProductive,
	rescuetime.Productive,
	rescuetime.Neutral,
	rescuetime.Distracting,
	rescuetime.VeryDistracting,
}

func handleProductivityScore(client *rescuetime.Client) mcp.ToolHandlerFor[ProductivityScoreInput, ProductivityScoreOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ProductivityScoreInput) (*mcp.CallToolResult, ProductivityScoreOutput, error) {
		rows, today, err := todayActivities(ctx, client)
		if err != nil {
			return nil, ProductivityScoreOutput{}, fmt.Errorf("getting productivity score: %w", err)
		}

		score := rescuetime.ComputeScore(rows)
		levels := make([]LevelBreakdown, 0, len(scoreLevels))
		for _, level := range scoreLevels {
			seconds := score.SecondsByLevel[level]
			levels = append(levels, LevelBreakdown{
				Level:      int(level),
				Label:      level.Label(),
				Seconds:    seconds,
				Hours:      rescuetime.Hours(seconds),
				Percentage: score.Percentage(level),
			})
		}

		return nil, ProductivityScoreOutput{
			Date:             today.String(),
			Pulse:            score.Pulse,
			Rating:           score.Rating,
			TotalHours:       rescuetime.Hours(score.TotalSeconds),
			ProductiveHours:  rescuetime.Hours(score.ProductiveSeconds()),
			DistractingHours: rescuetime.Hours(score.DistractingSeconds()),
			NeutralHours:     rescuetime.Hours(score.NeutralSeconds()),
			Levels:           levels,
		}, nil
	}
}
