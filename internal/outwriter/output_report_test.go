package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportResultsTable(t *testing.T) {
	result := newTestResult()
	cfg := &contract.Config{
		Output:          schema.TextOut,
		Precision:       2,
		TopContributors: 10,
		Width:           120,
		UseEmojis:       true,
	}

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := WriteReportResults(&buf, result, cfg, duration)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "🔎 Repo: gitpulse @ abc1234")
	assert.Contains(t, output, "start of history")
	assert.Contains(t, output, "Alice <alice@example.com>")
	assert.Contains(t, output, "Bob <bob@example.com>")
	assert.Contains(t, output, "66.67%")
	assert.Contains(t, output, "33.33%")
	assert.Contains(t, output, "Showing top 2 of 2 contributors (total commits: 3)")
	assert.Contains(t, output, "Active span: 2024-05-06 → 2024-05-07 (2 days, 1.50 commits/day)")
	assert.Contains(t, output, "Peak hour: 09:00 (2 commits). Peak weekday: Monday (2 commits)")
	assert.Contains(t, output, "Streaks: 2 active days, longest 2, current 2")
	assert.Contains(t, output, "Analysis completed in 100ms")
}

func TestWriteReportResultsTableNoEmojis(t *testing.T) {
	result := newTestResult()
	cfg := &contract.Config{
		Output:          schema.TextOut,
		Precision:       1,
		TopContributors: 10,
		Width:           120,
	}

	var buf bytes.Buffer
	err := WriteReportResults(&buf, result, cfg, 10*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Repo: gitpulse @ abc1234")
	assert.NotContains(t, output, "🔎")
	assert.NotContains(t, output, "📅")
}

func TestWriteReportResultsTableSkippedLines(t *testing.T) {
	result := newTestResult()
	result.Skipped = 3
	cfg := &contract.Config{
		Output:          schema.TextOut,
		Precision:       2,
		TopContributors: 10,
		Width:           120,
	}

	var buf bytes.Buffer
	err := WriteReportResults(&buf, result, cfg, 10*time.Millisecond)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(3 malformed log lines skipped)")
}

func TestWriteReportResultsJSON(t *testing.T) {
	result := newTestResult()
	cfg := &contract.Config{
		Output:          schema.JSONOut,
		Precision:       2,
		TopContributors: 10,
	}

	var buf bytes.Buffer
	err := WriteReportResults(&buf, result, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	var decoded map[string]any
	err = json.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(t, err)

	assert.Equal(t, "/home/dev/gitpulse", decoded["repo_path"])
	assert.Equal(t, "abc1234", decoded["repo_hash"])

	report, ok := decoded["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), report["total_commits"])
	assert.Equal(t, float64(9), report["peak_hour"])
	assert.Equal(t, float64(0), report["peak_weekday"])

	contributors, ok := report["contributors"].([]any)
	require.True(t, ok)
	require.Len(t, contributors, 2)
}

func TestWriteReportResultsCSV(t *testing.T) {
	result := newTestResult()
	cfg := &contract.Config{
		Output:          schema.CSVOut,
		Precision:       2,
		TopContributors: 10,
	}

	var buf bytes.Buffer
	err := WriteReportResults(&buf, result, cfg, 75*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "author")
	assert.Contains(t, lines[0], "share")
	assert.Contains(t, lines[1], "Alice <alice@example.com>")
	assert.Contains(t, lines[1], "66.67")
	assert.Contains(t, lines[2], "Bob <bob@example.com>")
}

func TestWriteReportResultsEmpty(t *testing.T) {
	result := newEmptyResult()
	cfg := &contract.Config{
		Output:          schema.TextOut,
		Precision:       2,
		TopContributors: 10,
		Width:           120,
	}

	var buf bytes.Buffer
	err := WriteReportResults(&buf, result, cfg, 5*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "No commits found in range")
	assert.Contains(t, output, "Analysis completed in 5ms")
	assert.NotContains(t, output, "Showing top")
}
