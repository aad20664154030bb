package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// PrintHeatmap renders the weekday-by-hour heatmap to the configured destination.
func PrintHeatmap(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		return printParquetHeatmap(result, cfg)
	case schema.SQLiteOut:
		return printSQLiteSnapshot(result, cfg, duration)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteHeatmapResults(w, result, cfg, duration)
		}, successMessage(cfg.Output))
	}
}

// WriteHeatmapResults outputs the heatmap, dispatching based on the output format configured.
func WriteHeatmapResults(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONHeatmap(w, result.Report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVHeatmap(w, result.Report); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to the shaded console grid
		if err := writeHeatmapGrid(w, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing grid output: %w", err)
		}
	}
	return nil
}

// writeHeatmapGrid renders the 7x24 grid with shading glyphs scaled to the
// busiest cell. Rows are ISO weekdays, columns are hours of the day.
func writeHeatmapGrid(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	report := result.Report

	if err := writeAnalysisHeader(w, result, cfg); err != nil {
		return err
	}

	glyph := contract.GetPlainGlyph
	if cfg.UseColors {
		glyph = contract.GetColorGlyph
	}
	max := report.Heatmap.Max()

	// Hour axis across the top
	var axis strings.Builder
	axis.WriteString(fmt.Sprintf("%-10s", ""))
	for hour := range schema.HourCount {
		axis.WriteString(fmt.Sprintf("%02d ", hour))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(axis.String(), " ")); err != nil {
		return err
	}

	// One row per weekday, two glyphs per cell to match the axis width
	for day := range schema.WeekdayCount {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%-10s", schema.WeekdayNames[day]))
		for hour := range schema.HourCount {
			cell := glyph(report.Heatmap[day][hour], max)
			row.WriteString(cell + cell + " ")
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row.String(), " ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, formatPeakLine(report)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total commits: %d (busiest cell: %d)\n", report.TotalCommits, max); err != nil {
		return err
	}
	return writeAnalysisFooter(w, result, duration)
}

// writeJSONHeatmap marshals the heatmap projection of the report and writes it.
func writeJSONHeatmap(w io.Writer, report *schema.AggregateReport) error {
	return writeJSON(w, report.HeatmapView())
}

// writeCSVHeatmap writes every cell of the grid as a weekday, hour, commits row.
func writeCSVHeatmap(w io.Writer, report *schema.AggregateReport) error {
	header := []string{
		"weekday",
		"hour",
		"commits",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for day := range schema.WeekdayCount {
			for hour := range schema.HourCount {
				row := []string{
					schema.WeekdayNames[day],
					strconv.Itoa(hour),
					strconv.Itoa(report.Heatmap[day][hour]),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
