package core

import (
	"context"

	"github.com/gitpulse/gitpulse/core/gitlog"
	"github.com/gitpulse/gitpulse/core/stats"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// RunAnalysis executes the extraction and aggregation pipeline for one
// repository: git log, lazy parse, collect, aggregate. The returned result
// carries the report plus the run metadata the writers present.
func RunAnalysis(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.AnalysisResult, error) {
	out, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, err
	}

	records, finish := gitlog.Records(gitlog.Lines(out))
	collected := gitlog.CollectRecords(ctx, records, cfg.AuthorFilter)
	skipped := finish()

	report, err := stats.Aggregate(collected)
	if err != nil {
		return nil, err
	}

	result := &schema.AnalysisResult{
		Report:   report,
		RepoPath: cfg.RepoPath,
		Skipped:  skipped,
	}

	// Report metadata only; analysis proceeds even when HEAD cannot resolve
	if hash, hashErr := client.GetRepoHash(ctx, cfg.RepoPath); hashErr == nil {
		result.RepoHash = hash
	}

	return result, nil
}
