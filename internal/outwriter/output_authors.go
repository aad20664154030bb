package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAuthors renders the ranked contributor list to the configured destination.
func PrintAuthors(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		return printParquetContributors(result, cfg)
	case schema.SQLiteOut:
		return printSQLiteSnapshot(result, cfg, duration)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteAuthorResults(w, result, cfg, duration)
		}, successMessage(cfg.Output))
	}
}

// WriteAuthorResults outputs the contributor ranking, dispatching based on the output format configured.
func WriteAuthorResults(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONContributors(w, result.Report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVContributors(w, result.Report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeAuthorTable(w, result, cfg, fmtFloat, intFmt, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeAuthorTable generates and writes the human-readable contributor table.
func writeAuthorTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
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
	table.Header([]string{"Rank", "Author", "Commits", "Share", "First", "Last"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	maxWidth := GetMaxTableIdentityWidth(cfg, true)
	ranked := topContributors(report, cfg)
	var data [][]string
	for i, c := range ranked {
		author := contract.TruncateIdentity(c.Author, maxWidth)
		share := fmtFloat(shareOf(c.Commits, report.TotalCommits)) + "%"
		row := []string{
			strconv.Itoa(i + 1),             // Rank
			author,                          // Author
			fmt.Sprintf(intFmt, c.Commits),  // Commits
			share,                           // Share
			c.FirstCommit.Format(dayFormat), // First
			c.LastCommit.Format(dayFormat),  // Last
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

	if _, err := fmt.Fprintf(w, "Showing top %d of %d contributors (total commits: %d)\n",
		len(ranked), len(report.Contributors), report.TotalCommits); err != nil {
		return err
	}
	return writeAnalysisFooter(w, result, duration)
}

// writeJSONContributors marshals the ranked contributor list to JSON and writes it.
func writeJSONContributors(w io.Writer, report *schema.AggregateReport, cfg *contract.Config) error {
	return writeJSON(w, schema.EnrichContributors(report, cfg.TopContributors))
}

// writeCSVContributors writes the ranked contributor list in CSV format.
func writeCSVContributors(w io.Writer, report *schema.AggregateReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"author",
		"commits",
		"share",
		"first_commit",
		"last_commit",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, c := range topContributors(report, cfg) {
			share := fmtFloat(shareOf(c.Commits, report.TotalCommits))
			first := c.FirstCommit.Format(contract.DateTimeFormat)
			last := c.LastCommit.Format(contract.DateTimeFormat)
			row := []string{
				strconv.Itoa(i + 1),            // Rank
				c.Author,                       // Author
				fmt.Sprintf(intFmt, c.Commits), // Commits
				share,                          // Share
				first,                          // First Commit Date
				last,                           // Last Commit Date
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
