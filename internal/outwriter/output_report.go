package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReport renders the full activity report to the configured destination.
func PrintReport(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		return printParquetContributors(result, cfg)
	case schema.SQLiteOut:
		return printSQLiteSnapshot(result, cfg, duration)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteReportResults(w, result, cfg, duration)
		}, successMessage(cfg.Output))
	}
}

// WriteReportResults outputs the activity report, dispatching based on the output format configured.
func WriteReportResults(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVContributors(w, result.Report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable summary with a contributor table
		if err := writeReportTable(w, result, cfg, fmtFloat, intFmt, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeReportTable generates and writes the human-readable report.
func writeReportTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	report := result.Report

	if err := writeAnalysisHeader(w, result, cfg); err != nil {
		return err
	}
	if report.Empty() {
		if _, err := fmt.Fprintln(w, "No commits found in range"); err != nil {
			return err
		}
		return writeAnalysisFooter(w, result, duration)
	}

	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	table.Header([]string{"Rank", "Author", "Commits", "Share"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	maxWidth := GetMaxTableIdentityWidth(cfg, false)
	ranked := topContributors(report, cfg)
	var data [][]string
	for i, c := range ranked {
		author := contract.TruncateIdentity(c.Author, maxWidth)
		share := fmtFloat(shareOf(c.Commits, report.TotalCommits)) + "%"
		row := []string{
			strconv.Itoa(i + 1),            // Rank
			author,                         // Author
			fmt.Sprintf(intFmt, c.Commits), // Commits
			share,                          // Share
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary lines after the table
	if _, err := fmt.Fprintf(w, "Showing top %d of %d contributors (total commits: %d)\n",
		len(ranked), len(report.Contributors), report.TotalCommits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Active span: %s → %s (%d days, %s commits/day)\n",
		report.FirstCommit.Format(dayFormat), report.LastCommit.Format(dayFormat),
		report.DaySpan(), fmtFloat(report.CommitsPerDay)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, formatPeakLine(report)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Streaks: %d active days, longest %d, current %d\n",
		report.Streaks.ActiveDays, report.Streaks.LongestStreak, report.Streaks.CurrentStreak); err != nil {
		return err
	}
	return writeAnalysisFooter(w, result, duration)
}
