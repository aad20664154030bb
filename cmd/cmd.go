// Package cmd defines the command-line interface for gitpulse.
package cmd

import (
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("author", "a", "", "Filter commits by author name or email substring")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored heatmap cells (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in section headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv or parquet or sqlite")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("since", "", "Start date in ISO8601 or time ago")
	rootCmd.PersistentFlags().IntP("top", "t", contract.DefaultTopContributors, "Number of contributors to display")
	rootCmd.PersistentFlags().String("until", "", "End date in ISO8601 or time ago")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
