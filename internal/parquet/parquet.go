// Package parquet provides data structures and functions for exporting
// gitpulse reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributorRow represents one ranked contributor in a report.
type ContributorRow struct {
	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// Author is the normalized identity in "Name <email>" form
	Author string `parquet:"author,snappy"`

	// Commits is the total commit count for this identity
	Commits int32 `parquet:"commits,snappy"`

	// Share is the percentage of the report's total commits
	Share float64 `parquet:"share,snappy"`

	// FirstCommit is the earliest commit timestamp for this identity
	FirstCommit time.Time `parquet:"first_commit,snappy"`

	// LastCommit is the latest commit timestamp for this identity
	LastCommit time.Time `parquet:"last_commit,snappy"`

	// RepoHash is the short HEAD hash of the analyzed repository (nullable)
	RepoHash *string `parquet:"repo_hash,optional,snappy"`
}

// HeatmapCellRow represents one weekday-by-hour cell of the activity grid.
type HeatmapCellRow struct {
	// Weekday is the display name of the row, Monday through Sunday
	Weekday string `parquet:"weekday,snappy"`

	// WeekdayIndex is the ISO weekday index, 0=Monday..6=Sunday
	WeekdayIndex int32 `parquet:"weekday_index,snappy"`

	// Hour is the hour of day, 0-23
	Hour int32 `parquet:"hour,snappy"`

	// Commits is the number of commits bucketed into this cell
	Commits int32 `parquet:"commits,snappy"`

	// RepoHash is the short HEAD hash of the analyzed repository (nullable)
	RepoHash *string `parquet:"repo_hash,optional,snappy"`
}

// ConvertContributors maps a result's ranked contributor list to Parquet rows.
func ConvertContributors(result *schema.AnalysisResult) []ContributorRow {
	report := result.Report
	repoHash := optionalHash(result)

	rows := make([]ContributorRow, len(report.Contributors))
	for i, c := range report.Contributors {
		share := 0.0
		if report.TotalCommits > 0 {
			share = 100 * float64(c.Commits) / float64(report.TotalCommits)
		}
		rows[i] = ContributorRow{
			Rank:        int32(i + 1),
			Author:      c.Author,
			Commits:     int32(c.Commits),
			Share:       share,
			FirstCommit: c.FirstCommit,
			LastCommit:  c.LastCommit,
			RepoHash:    repoHash,
		}
	}
	return rows
}

// ConvertHeatmapCells maps every cell of a result's activity grid to Parquet rows.
func ConvertHeatmapCells(result *schema.AnalysisResult) []HeatmapCellRow {
	repoHash := optionalHash(result)

	rows := make([]HeatmapCellRow, 0, schema.WeekdayCount*schema.HourCount)
	for day := range schema.WeekdayCount {
		for hour := range schema.HourCount {
			rows = append(rows, HeatmapCellRow{
				Weekday:      schema.WeekdayNames[day],
				WeekdayIndex: int32(day),
				Hour:         int32(hour),
				Commits:      int32(result.Report.Heatmap[day][hour]),
				RepoHash:     repoHash,
			})
		}
	}
	return rows
}

// optionalHash returns the repo hash as a nullable column value.
func optionalHash(result *schema.AnalysisResult) *string {
	if result.RepoHash == "" {
		return nil
	}
	hash := result.RepoHash
	return &hash
}

// WriteContributorsParquet writes a slice of ContributorRow structs to a Parquet file.
func WriteContributorsParquet(data []ContributorRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ContributorRow struct tags
	writer := parquet.NewGenericWriter[ContributorRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteHeatmapParquet writes a slice of HeatmapCellRow structs to a Parquet file.
func WriteHeatmapParquet(data []HeatmapCellRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HeatmapCellRow struct tags
	writer := parquet.NewGenericWriter[HeatmapCellRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
