package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// heatmapCmd renders the weekday-by-hour commit grid.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [repo-path]",
	Short: "Show the weekday/hour commit heatmap.",
	Long: `Visualize when commits happen as a 7x24 grid of weekdays and hours.

Cells are shaded relative to the busiest hour, using the author's local
wall clock, so a 9am commit counts as 9am no matter where the report is
generated. Peak hour and weekday are highlighted below the grid.

Examples:
  # Heatmap of the current repository
  gitpulse heatmap

  # Plain glyphs without color, e.g. for piping to a file
  gitpulse heatmap --color no

  # Heatmap of one contributor's rhythm
  gitpulse heatmap --author bob

  # Machine-readable cells for further analysis
  gitpulse heatmap --output csv --output-file cells.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run heatmap analysis", err)
		}
	},
}
