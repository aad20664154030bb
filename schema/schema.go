// Package schema has the models, constants and shared helpers for all parts of gitpulse.
package schema

import "time"

// CommitRecord represents one parsed commit from the activity log.
// Records are constructed once by the log parser and never mutated afterwards.
type CommitRecord struct {
	Author    string    // Normalized identity in "Name <email>" form
	Timestamp time.Time // Author time with the original UTC offset preserved
	Hash      string    // Short commit hash, may be empty
}

// ContributorStat represents the commit activity of one author identity.
// Identities are compared by exact string match; the same person committing
// under two emails counts as two contributors.
type ContributorStat struct {
	Author      string    `json:"author"`       // Normalized identity in "Name <email>" form
	Commits     int       `json:"commits"`      // Total commits by this identity
	FirstCommit time.Time `json:"first_commit"` // Timestamp of the earliest commit
	LastCommit  time.Time `json:"last_commit"`  // Timestamp of the latest commit
}

// StreakSummary represents commit-day streak metrics over the whole history.
// Days are author-local calendar dates.
type StreakSummary struct {
	ActiveDays    int `json:"active_days"`    // Distinct days with at least one commit
	LongestStreak int `json:"longest_streak"` // Longest run of consecutive active days
	CurrentStreak int `json:"current_streak"` // Run of consecutive active days ending at the latest one
}

// AggregateReport is the single output value of one aggregation run.
// The caller owns it; the aggregator keeps no state between runs.
type AggregateReport struct {
	TotalCommits  int               `json:"total_commits"`   // Number of records aggregated
	Heatmap       HeatmapMatrix     `json:"heatmap"`         // Weekday x hour commit counts
	PeakHour      int               `json:"peak_hour"`       // 0-23, or NoPeak when there is no data
	PeakWeekday   int               `json:"peak_weekday"`    // 0=Monday..6=Sunday, or NoPeak
	Contributors  []ContributorStat `json:"contributors"`    // Sorted by commits desc, then author asc
	FirstCommit   time.Time         `json:"first_commit"`    // Earliest timestamp seen
	LastCommit    time.Time         `json:"last_commit"`     // Latest timestamp seen
	Streaks       StreakSummary     `json:"streaks"`         // Active-day streak metrics
	CommitsPerDay float64           `json:"commits_per_day"` // TotalCommits over the inclusive day span
}

// AnalysisResult bundles an aggregate report with metadata about the run
// that produced it. This is the value handed from the pipeline to the writers.
type AnalysisResult struct {
	Report   *AggregateReport `json:"report"`
	RepoPath string           `json:"repo_path"`           // Resolved repository root
	RepoHash string           `json:"repo_hash,omitempty"` // Short HEAD hash, empty if unresolvable
	Skipped  int              `json:"skipped_lines"`       // Malformed log lines dropped by the parser
}

// Empty reports true when the report was aggregated from zero records.
func (r *AggregateReport) Empty() bool {
	return r.TotalCommits == 0
}

// DaySpan returns the inclusive number of calendar days between the first
// and last commit, or zero for an empty report.
func (r *AggregateReport) DaySpan() int {
	if r.Empty() {
		return 0
	}
	return int(civilDate(r.LastCommit).Sub(civilDate(r.FirstCommit)).Hours()/24) + 1
}

// civilDate pins t's local calendar date to midnight UTC so that
// subtracting two of them counts whole days.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
