// Package statsdb persists report snapshots to a SQLite database. Each
// export appends a new run; the tool itself never reads snapshots back,
// they exist for downstream querying.
package statsdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gitpulse/gitpulse/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Table names for snapshot storage.
const (
	snapshotRunsTable         = "gitpulse_snapshot_runs"
	snapshotContributorsTable = "gitpulse_snapshot_contributors"
	snapshotHeatmapTable      = "gitpulse_snapshot_heatmap"
)

// SnapshotStore writes report snapshots into a SQLite file database.
type SnapshotStore struct {
	db *sql.DB
}

// RunRecord is one stored snapshot run.
type RunRecord struct {
	RunID         int64
	CreatedAt     time.Time
	RepoPath      string
	RepoHash      string
	TotalCommits  int
	PeakHour      int
	PeakWeekday   int
	FirstCommit   *time.Time
	LastCommit    *time.Time
	CommitsPerDay float64
	ActiveDays    int
	LongestStreak int
	CurrentStreak int
	Skipped       int
	DurationMs    int64
}

// ContributorRecord is one stored contributor row of a snapshot run.
type ContributorRecord struct {
	RunID       int64
	Rank        int
	Author      string
	Commits     int
	FirstCommit time.Time
	LastCommit  time.Time
}

// CellRecord is one stored heatmap cell of a snapshot run. Only cells with
// activity are stored; absent cells read back as zero.
type CellRecord struct {
	RunID   int64
	Weekday int
	Hour    int
	Commits int
}

// NewSnapshotStore opens the SQLite database at dbPath, creating the file
// and migrating the schema when needed.
func NewSnapshotStore(dbPath string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database at %q: %w", dbPath, err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// SaveSnapshot inserts the whole result as a new run and returns its ID.
// The run row, contributor rows and heatmap cells commit in one transaction.
func (s *SnapshotStore) SaveSnapshot(result *schema.AnalysisResult, duration time.Duration) (int64, error) {
	report := result.Report

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runQuery := fmt.Sprintf(`INSERT INTO %s (
		created_at, repo_path, repo_hash, total_commits, peak_hour, peak_weekday,
		first_commit, last_commit, commits_per_day, active_days, longest_streak,
		current_streak, skipped_lines, run_duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, snapshotRunsTable)
	res, err := tx.Exec(runQuery,
		time.Now().Format(time.RFC3339Nano),
		result.RepoPath,
		nullableString(result.RepoHash),
		report.TotalCommits,
		report.PeakHour,
		report.PeakWeekday,
		nullableTime(report.FirstCommit),
		nullableTime(report.LastCommit),
		report.CommitsPerDay,
		report.Streaks.ActiveDays,
		report.Streaks.LongestStreak,
		report.Streaks.CurrentStreak,
		result.Skipped,
		duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot run id: %w", err)
	}

	contribQuery := fmt.Sprintf(`INSERT INTO %s (run_id, rank, author, commits, first_commit, last_commit)
		VALUES (?, ?, ?, ?, ?, ?)`, snapshotContributorsTable)
	for i, c := range report.Contributors {
		if _, err := tx.Exec(contribQuery, runID, i+1, c.Author, c.Commits,
			c.FirstCommit.Format(time.RFC3339Nano), c.LastCommit.Format(time.RFC3339Nano)); err != nil {
			return 0, fmt.Errorf("failed to insert contributor row: %w", err)
		}
	}

	cellQuery := fmt.Sprintf(`INSERT INTO %s (run_id, weekday, hour, commits)
		VALUES (?, ?, ?, ?)`, snapshotHeatmapTable)
	for day := range schema.WeekdayCount {
		for hour := range schema.HourCount {
			count := report.Heatmap[day][hour]
			if count == 0 {
				continue
			}
			if _, err := tx.Exec(cellQuery, runID, day, hour, count); err != nil {
				return 0, fmt.Errorf("failed to insert heatmap cell: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return runID, nil
}

// GetAllRuns retrieves all stored snapshot runs in insertion order.
func (s *SnapshotStore) GetAllRuns() ([]RunRecord, error) {
	query := fmt.Sprintf(`SELECT run_id, created_at, repo_path, repo_hash, total_commits,
		peak_hour, peak_weekday, first_commit, last_commit, commits_per_day,
		active_days, longest_streak, current_streak, skipped_lines, run_duration_ms
		FROM %s ORDER BY run_id`, snapshotRunsTable)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []RunRecord
	for rows.Next() {
		var record RunRecord
		var createdAtStr string
		var repoHash sql.NullString
		var firstStr, lastStr sql.NullString
		if err := rows.Scan(&record.RunID, &createdAtStr, &record.RepoPath, &repoHash,
			&record.TotalCommits, &record.PeakHour, &record.PeakWeekday,
			&firstStr, &lastStr, &record.CommitsPerDay, &record.ActiveDays,
			&record.LongestStreak, &record.CurrentStreak, &record.Skipped,
			&record.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot run: %w", err)
		}

		createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		record.CreatedAt = createdAt
		record.RepoHash = repoHash.String

		if record.FirstCommit, err = parseNullableTime(firstStr); err != nil {
			return nil, fmt.Errorf("failed to parse first_commit: %w", err)
		}
		if record.LastCommit, err = parseNullableTime(lastStr); err != nil {
			return nil, fmt.Errorf("failed to parse last_commit: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot runs: %w", err)
	}
	return results, nil
}

// GetContributors retrieves the contributor rows of one snapshot run.
func (s *SnapshotStore) GetContributors(runID int64) ([]ContributorRecord, error) {
	query := fmt.Sprintf(`SELECT run_id, rank, author, commits, first_commit, last_commit
		FROM %s WHERE run_id = ? ORDER BY rank`, snapshotContributorsTable)

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []ContributorRecord
	for rows.Next() {
		var record ContributorRecord
		var firstStr, lastStr string
		if err := rows.Scan(&record.RunID, &record.Rank, &record.Author,
			&record.Commits, &firstStr, &lastStr); err != nil {
			return nil, fmt.Errorf("failed to scan contributor: %w", err)
		}
		if record.FirstCommit, err = time.Parse(time.RFC3339Nano, firstStr); err != nil {
			return nil, fmt.Errorf("failed to parse first_commit: %w", err)
		}
		if record.LastCommit, err = time.Parse(time.RFC3339Nano, lastStr); err != nil {
			return nil, fmt.Errorf("failed to parse last_commit: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contributors: %w", err)
	}
	return results, nil
}

// GetHeatmapCells retrieves the stored heatmap cells of one snapshot run.
func (s *SnapshotStore) GetHeatmapCells(runID int64) ([]CellRecord, error) {
	query := fmt.Sprintf(`SELECT run_id, weekday, hour, commits
		FROM %s WHERE run_id = ? ORDER BY weekday, hour`, snapshotHeatmapTable)

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query heatmap cells: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []CellRecord
	for rows.Next() {
		var record CellRecord
		if err := rows.Scan(&record.RunID, &record.Weekday, &record.Hour, &record.Commits); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap cell: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating heatmap cells: %w", err)
	}
	return results, nil
}

// Close closes the underlying connection.
func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// nullableString maps an empty string to NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime maps the zero time to NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

// parseNullableTime parses an optional RFC 3339 column back to a time.
func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
