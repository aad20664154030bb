package outwriter

import (
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

// newTestResult builds a small result in the shape produced by aggregation:
// two commits by Alice on Monday morning, one by Bob on Tuesday afternoon.
func newTestResult() *schema.AnalysisResult {
	var matrix schema.HeatmapMatrix
	matrix[0][9] = 2
	matrix[1][14] = 1
	report := &schema.AggregateReport{
		TotalCommits: 3,
		Heatmap:      matrix,
		PeakHour:     9,
		PeakWeekday:  0,
		Contributors: []schema.ContributorStat{
			{
				Author:      "Alice <alice@example.com>",
				Commits:     2,
				FirstCommit: time.Date(2024, 5, 6, 9, 15, 0, 0, time.UTC),
				LastCommit:  time.Date(2024, 5, 6, 9, 45, 0, 0, time.UTC),
			},
			{
				Author:      "Bob <bob@example.com>",
				Commits:     1,
				FirstCommit: time.Date(2024, 5, 7, 14, 0, 0, 0, time.UTC),
				LastCommit:  time.Date(2024, 5, 7, 14, 0, 0, 0, time.UTC),
			},
		},
		FirstCommit:   time.Date(2024, 5, 6, 9, 15, 0, 0, time.UTC),
		LastCommit:    time.Date(2024, 5, 7, 14, 0, 0, 0, time.UTC),
		Streaks:       schema.StreakSummary{ActiveDays: 2, LongestStreak: 2, CurrentStreak: 2},
		CommitsPerDay: 1.5,
	}
	return &schema.AnalysisResult{
		Report:   report,
		RepoPath: "/home/dev/gitpulse",
		RepoHash: "abc1234",
	}
}

// newEmptyResult builds a result aggregated from zero commits.
func newEmptyResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		Report: &schema.AggregateReport{
			PeakHour:    schema.NoPeak,
			PeakWeekday: schema.NoPeak,
		},
		RepoPath: "/home/dev/empty",
	}
}

func TestTopContributors(t *testing.T) {
	report := newTestResult().Report

	tests := []struct {
		name     string
		top      int
		expected int
	}{
		{
			name:     "top below list length",
			top:      1,
			expected: 1,
		},
		{
			name:     "top equals list length",
			top:      2,
			expected: 2,
		},
		{
			name:     "top above list length",
			top:      10,
			expected: 2,
		},
		{
			name:     "zero means everything",
			top:      0,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{TopContributors: tt.top}
			ranked := topContributors(report, cfg)
			assert.Len(t, ranked, tt.expected)
			if tt.expected > 0 {
				assert.Equal(t, "Alice <alice@example.com>", ranked[0].Author)
			}
		})
	}
}

func TestShareOf(t *testing.T) {
	assert.InDelta(t, 66.666, shareOf(2, 3), 0.01)
	assert.InDelta(t, 100.0, shareOf(3, 3), 0.01)
	assert.Zero(t, shareOf(0, 3))
	assert.Zero(t, shareOf(5, 0))
}

func TestFormatPeakLine(t *testing.T) {
	full := newTestResult().Report
	assert.Equal(t, "Peak hour: 09:00 (2 commits). Peak weekday: Monday (2 commits)", formatPeakLine(full))

	empty := newEmptyResult().Report
	assert.Equal(t, "Peak activity: none", formatPeakLine(empty))
}

func TestFormatBound(t *testing.T) {
	assert.Equal(t, "start of history", formatBound(time.Time{}, "start of history"))

	bound := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-06T09:00:00Z", formatBound(bound, "now"))
}
