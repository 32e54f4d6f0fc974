// Package main provides the entry point for the rescuetime-mcp CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadencehq/rescuetime-mcp/internal/output"
	"github.com/cadencehq/rescuetime-mcp/internal/rescuetime"
)

// newSummaryCmd creates the summary command.
func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show yesterday's daily summary",
		Long: `Show the most recent daily summary RescueTime can have.

Summaries lag about a day behind, so this fetches yesterday's record.
Reports "no data" when the feed has nothing for yesterday; it does not
scan further back.

Examples:
  rescuetime-mcp summary         # Human-readable summary
  rescuetime-mcp summary --json  # JSON for scripting`,
		RunE: runSummary,
	}
}

// runSummary executes the summary command.
func runSummary(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	client, err := newClient()
	if err != nil {
		printer.Error(err)
		return err
	}
	defer client.Close()

	summary, err := client.LatestDailySummary(cmd.Context())
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("getting latest daily summary", err)
		printer.Error(sysErr)
		return sysErr
	}

	if summary == nil {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{"found": false})
		}
		printer.Println("No daily summary available for " + rescuetime.Yesterday().String())
		return nil
	}

	if printer.IsJSON() {
		return printer.WriteJSON(summary)
	}

	printer.Section("Daily Summary " + summary.Date)
	printer.KeyValue("Productivity pulse", fmt.Sprintf("%d", summary.ProductivityPulse))
	printer.KeyValue("Total hours", fmt.Sprintf("%.1f", summary.TotalHours))
	printer.KeyValue("Productive", fmt.Sprintf("%.1f%%", summary.AllProductivePercentage))
	printer.KeyValue("Distracting", fmt.Sprintf("%.1f%%", summary.AllDistractingPercentage))
	printer.KeyValue("Neutral", fmt.Sprintf("%.1f%%", summary.NeutralPercentage))
	return nil
}
