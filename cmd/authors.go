package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// authorsCmd renders the ranked contributor breakdown.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "Show contributors ranked by commit count.",
	Long: `Rank everyone who committed to the repository by their activity.

Each row shows the contributor's commit count, their share of all commits,
and the dates of their first and last commit. Identities are grouped by
exact "Name <email>" match, so the same person committing under two emails
appears twice.

Examples:
  # Top contributors of the current repository
  gitpulse authors

  # Widen the list beyond the default top 10
  gitpulse authors --top 25

  # Who was active this quarter?
  gitpulse authors --since "3 months ago"

  # Export the ranking to CSV
  gitpulse authors --output csv --output-file authors.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run authors analysis", err)
		}
	},
}
