// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadencehq/rescuetime-mcp/internal/output"
	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// scoreResult holds the data for score output.
type scoreResult struct {
	Date             string  `json:"date"`
	Pulse            int     `json:"pulse"`
	Rating           string  `json:"rating"`
	TotalHours       float64 `json:"total_hours"`
	ProductiveHours  float64 `json:"productive_hours"`
	DistractingHours float64 `json:"distracting_hours"`
	NeutralHours     float64 `json:"neutral_hours"`
}

// newScoreCmd creates the score command.
func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show today's productivity pulse",
		Long: `Compute today's weighted productivity pulse from analytic data.

The pulse is a 0-100 index of time spent at each productivity level,
bucketed into a qualitative rating.

Examples:
  rescuetime-mcp score         # Human-readable score
  rescuetime-mcp score --json  # JSON for scripting`,
		RunE: runScore,
	}
}

// runScore executes the score command.
func runScore(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	client, err := newClient()
	if err != nil {
		printer.Error(err)
		return err
	}
	defer client.Close()

	today := rescuetime.Today()
	data, err := client.AnalyticData(cmd.Context(), rescuetime.AnalyticDataRequest{
		Perspective:   rescuetime.PerspectiveRank,
		Resolution:    rescuetime.ResolutionHour,
		RestrictBegin: today,
		RestrictEnd:   today,
	})
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("getting productivity score", err)
		printer.Error(sysErr)
		return sysErr
	}

	score := rescuetime.ComputeScore(data.Activities())
	result := scoreResult{
		Date:             today.String(),
		Pulse:            score.Pulse,
		Rating:           score.Rating,
		TotalHours:       rescuetime.Hours(score.TotalSeconds),
		ProductiveHours:  rescuetime.Hours(score.ProductiveSeconds()),
		DistractingHours: rescuetime.Hours(score.DistractingSeconds()),
		NeutralHours:     rescuetime.Hours(score.NeutralSeconds()),
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Section("Productivity " + result.Date)
	printer.KeyValue("Pulse", fmt.Sprintf("%d (%s)", result.Pulse, result.Rating))
	printer.KeyValue("Total hours", fmt.Sprintf("%.2f", result.TotalHours))
	printer.KeyValue("Productive hours", fmt.Sprintf("%.2f", result.ProductiveHours))
	printer.KeyValue("Distracting hours", fmt.Sprintf("%.2f", result.DistractingHours))
	printer.KeyValue("Neutral hours", fmt.Sprintf("%.2f", result.NeutralHours))
	return nil
}
