package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/parquet"
	"github.com/gitpulse/gitpulse/internal/statsdb"
	"github.com/gitpulse/gitpulse/schema"
)

// printParquetContributors exports the full contributor ranking to a Parquet file.
func printParquetContributors(result *schema.AnalysisResult, cfg *contract.Config) error {
	rows := parquet.ConvertContributors(result)
	if err := parquet.WriteContributorsParquet(rows, cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d contributor rows to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// printParquetHeatmap exports the weekday-by-hour cells to a Parquet file.
func printParquetHeatmap(result *schema.AnalysisResult, cfg *contract.Config) error {
	rows := parquet.ConvertHeatmapCells(result)
	if err := parquet.WriteHeatmapParquet(rows, cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d heatmap cells to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// printSQLiteSnapshot persists the whole report as a new snapshot run in a
// SQLite database, creating the file and tables on first use.
func printSQLiteSnapshot(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	store, err := statsdb.NewSnapshotStore(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("error opening snapshot store: %w", err)
	}
	defer func() { _ = store.Close() }()

	runID, err := store.SaveSnapshot(result, duration)
	if err != nil {
		return fmt.Errorf("error writing snapshot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote snapshot run %d to %s\n", runID, cfg.OutputFile)
	return nil
}
