// Package contract provides interfaces and shared utilities for the gitpulse CLI's internal architecture.
package contract

import (
	"context"
	"time"
)

// GitClient defines the Git operations the analysis pipeline needs.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns the raw pipe-delimited commit lines for the
	// repository, optionally bounded by a time range. One line per commit,
	// newest first.
	GetCommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)
}
