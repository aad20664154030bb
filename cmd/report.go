package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the full activity report.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Show the full commit activity report.",
	Long: `Analyze Git history and present the complete activity picture in one view.

The report combines:
- Total commits and the active date range with a per-day rate
- Peak coding hour and busiest weekday
- Top contributors ranked by commit count and share
- Commit-day streaks (active days, longest run, current run)

Examples:
  # Report on the repository in the current directory
  gitpulse report

  # Report on the last six months only
  gitpulse report --since "6 months ago"

  # Focus on one person's activity
  gitpulse report --author alice

  # Export the report as JSON for scripting
  gitpulse report --output json --output-file report.json

  # Append a snapshot to a SQLite database for trend tracking
  gitpulse report --output sqlite --output-file pulse.db`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run activity report", err)
		}
	},
}
