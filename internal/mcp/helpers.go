package mcp

import (
	"context"
	"fmt"

	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// parsePerspective validates a perspective string, defaulting to rank.
func parsePerspective(value string) (rescuetime.Perspective, error) {
	if value == "" {
		return rescuetime.PerspectiveRank, nil
	}
	perspective := rescuetime.Perspective(value)
	if !perspective.Valid() {
		return "", fmt.Errorf("invalid perspective %q: must be one of rank, interval", value)
	}
	return perspective, nil
}

// parseResolution validates a resolution string, defaulting to hour.
func parseResolution(value string) (rescuetime.Resolution, error) {
	if value == "" {
		return rescuetime.ResolutionHour, nil
	}
	resolution := rescuetime.Resolution(value)
	if !resolution.Valid() {
		return "", fmt.Errorf("invalid resolution_time %q: must be one of minute, hour, day, week, month", value)
	}
	return resolution, nil
}

// parseRestrictKind validates an optional restrict kind. Empty means no filter.
func parseRestrictKind(value string) (rescuetime.RestrictKind, error) {
	if value == "" {
		return "", nil
	}
	kind := rescuetime.RestrictKind(value)
	if !kind.Valid() {
		return "", fmt.Errorf(
			"invalid restrict_kind %q: must be one of category, activity, productivity, document, overview", value)
	}
	return kind, nil
}

// parseDateField parses an optional YYYY-MM-DD date input. Empty means unset.
func parseDateField(name, value string) (rescuetime.Date, error) {
	if value == "" {
		return rescuetime.Date{}, nil
	}
	parsed, err := rescuetime.ParseDate(value)
	if err != nil {
		return rescuetime.Date{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return parsed, nil
}

// validateFocusDuration checks a requested focus session duration. nil means
// unspecified and falls back to the default. The only legal values are -1
// (until end of day) and positive multiples of 5.
func validateFocusDuration(duration *int) (int, error) {
	if duration == nil {
		return rescuetime.DefaultFocusDuration, nil
	}
	value := *duration
	if value == -1 {
		return value, nil
	}
	if value <= 0 || value%5 != 0 {
		return 0, fmt.Errorf(
			"invalid duration %d: must be -1 (until end of day) or a positive multiple of 5 minutes", value)
	}
	return value, nil
}

// DateRange echoes the caller's date filters in wrapped list responses.
type DateRange struct {
	Begin string `json:"begin,omitempty" jsonschema:"start date of the requested range"`
	End   string `json:"end,omitempty"   jsonschema:"end date of the requested range"`
}

// todayActivities fetches today's analytic rows (rank perspective, hourly
// resolution) for the derived views.
func todayActivities(ctx context.Context, client *rescuetime.Client) ([]rescuetime.ActivityRow, rescuetime.Date, error) {
	today := rescuetime.Today()
	data, err := client.AnalyticData(ctx, rescuetime.AnalyticDataRequest{
		Perspective:   rescuetime.PerspectiveRank,
		Resolution:    rescuetime.ResolutionHour,
		RestrictBegin: today,
		RestrictEnd:   today,
	})
	if err != nil {
		return nil, rescuetime.Date{}, err
	}
	return data.Activities(), today, nil
}
