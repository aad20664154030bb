package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// writeAnalysisHeader prints a concise, 2-line header before each text output.
func writeAnalysisHeader(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config) error {
	repoName := filepath.Base(result.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}
	repoLabel := repoName
	if result.RepoHash != "" {
		repoLabel = fmt.Sprintf("%s @ %s", repoName, result.RepoHash)
	}

	repoPrefix, rangePrefix := "Repo:", "Range:"
	if cfg.UseEmojis {
		repoPrefix, rangePrefix = "🔎 Repo:", "📅 Range:"
	}

	// Line 1: The repository being analyzed
	if _, err := fmt.Fprintf(w, "%s %s\n", repoPrefix, repoLabel); err != nil {
		return err
	}

	// Line 2: The actual date range being analyzed
	_, err := fmt.Fprintf(w, "%s %s → %s\n", rangePrefix,
		formatBound(cfg.StartTime, "start of history"),
		formatBound(cfg.EndTime, "now"))
	return err
}

// formatBound renders one end of the analysis window, falling back to a
// label for the unbounded zero value.
func formatBound(t time.Time, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.Format(contract.DateTimeFormat)
}

// writeAnalysisFooter prints the timing line that closes every text output.
func writeAnalysisFooter(w io.Writer, result *schema.AnalysisResult, duration time.Duration) error {
	if result.Skipped > 0 {
		_, err := fmt.Fprintf(w, "Analysis completed in %v (%d malformed log lines skipped)\n", duration, result.Skipped)
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}

// formatPeakLine renders the peak hour and weekday summary, or a placeholder
// when the report holds no commits.
func formatPeakLine(report *schema.AggregateReport) string {
	if report.PeakHour == schema.NoPeak || report.PeakWeekday == schema.NoPeak {
		return "Peak activity: none"
	}
	hours := report.Heatmap.HourTotals()
	weekdays := report.Heatmap.WeekdayTotals()
	return fmt.Sprintf("Peak hour: %02d:00 (%d commits). Peak weekday: %s (%d commits)",
		report.PeakHour, hours[report.PeakHour],
		schema.WeekdayNames[report.PeakWeekday], weekdays[report.PeakWeekday])
}
