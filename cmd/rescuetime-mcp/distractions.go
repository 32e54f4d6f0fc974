// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadencehq/rescuetime-mcp/internal/output"
	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// distractionsResult holds the data for distractions output.
type distractionsResult struct {
	Date                  string            `json:"date"`
	Distractions          []distractionItem `json:"distractions"`
	TotalDistractingHours float64           `json:"total_distracting_hours"`
}

type distractionItem struct {
	Activity     string  `json:"activity"`
	Category     string  `json:"category"`
	Minutes      float64 `json:"minutes"`
	Productivity string  `json:"productivity"`
}

// newDistractionsCmd creates the distractions command.
func newDistractionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distractions",
		Short: "Show today's top distracting activities",
		Long: `List today's activities at distracting productivity levels,
sorted by time spent descending.

Examples:
  rescuetime-mcp distractions             # Top 5 distractions
  rescuetime-mcp distractions --limit 10  # Top 10
  rescuetime-mcp distractions --json      # JSON for scripting`,
		RunE: runDistractions,
	}
	cmd.Flags().Int("limit", 5, "Maximum number of distractions to show")
	return cmd
}

// runDistractions executes the distractions command.
func runDistractions(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		printer.Error(err)
		return err
	}
	if limit < 1 {
		userErr := output.NewUserError(fmt.Sprintf("invalid limit %d: must be at least 1", limit))
		printer.Error(userErr)
		return userErr
	}

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
		sysErr := output.NewSystemErrorWithCause("getting distractions", err)
		printer.Error(sysErr)
		return sysErr
	}

	top, totalSeconds := rescuetime.TopDistractions(data.Activities(), limit)
	result := distractionsResult{
		Date:                  today.String(),
		Distractions:          make([]distractionItem, 0, len(top)),
		TotalDistractingHours: rescuetime.Hours(totalSeconds),
	}
	for _, row := range top {
		result.Distractions = append(result.Distractions, distractionItem{
			Activity:     row.Activity,
			Category:     row.Category,
			Minutes:      rescuetime.Minutes(row.Seconds),
			Productivity: row.Productivity.Label(),
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Section("Top Distractions " + result.Date)
	if len(result.Distractions) == 0 {
		printer.Println("No distracting activity recorded today")
		return nil
	}

	rows := make([][]string, 0, len(result.Distractions))
	for _, d := range result.Distractions {
		rows = append(rows, []string{
			d.Activity,
			d.Category,
			fmt.Sprintf("%.1f", d.Minutes),
			d.Productivity,
		})
	}
	printer.Table([]string{"Activity", "Category", "Minutes", "Level"}, rows)
	printer.Println()
	printer.KeyValue("Total distracting hours", fmt.Sprintf("%.2f", result.TotalDistractingHours))
	return nil
}
