// Package core assembles the gitpulse pipeline: extract the commit log,
// parse it into records, aggregate statistics and hand the result to the
// output writers.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/schema"
)

// ExecuteReport runs the analysis and renders the full activity report.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := RunAnalysis(ctx, cfg, client)
	if err != nil {
		return err
	}
	warnSkipped(result)
	duration := time.Since(start)
	return outwriter.PrintReport(result, cfg, duration)
}

// ExecuteAuthors runs the analysis and renders the contributor breakdown.
// It serves as the main entry point for the 'authors' command.
func ExecuteAuthors(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := RunAnalysis(ctx, cfg, client)
	if err != nil {
		return err
	}
	warnSkipped(result)
	duration := time.Since(start)
	return outwriter.PrintAuthors(result, cfg, duration)
}

// ExecuteHeatmap runs the analysis and renders the weekday/hour grid.
// It serves as the main entry point for the 'heatmap' command.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := RunAnalysis(ctx, cfg, client)
	if err != nil {
		return err
	}
	warnSkipped(result)
	duration := time.Since(start)
	return outwriter.PrintHeatmap(result, cfg, duration)
}

// warnSkipped surfaces the malformed-line count on stderr so structured
// output modes still carry the diagnostic.
func warnSkipped(result *schema.AnalysisResult) {
	if result.Skipped > 0 {
		contract.LogWarn("Dropped malformed log lines", fmt.Errorf("%d skipped", result.Skipped))
	}
}
