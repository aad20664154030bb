// Package main provides a performance benchmarking tool for the gitpulse CLI.
// It measures execution times across different repository sizes and command types,
// running each benchmark multiple times and reporting the best and average wall times,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - gitpulse binary installed and available in PATH
// - Test repositories cloned to the specified base directory
// - Git repositories: cobra, viper, git, kubernetes
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (best run and average across runs).
type BenchmarkResult struct {
	Repository string
	Command    string
	BestTime   string
	AvgTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase    string
	Timeout     time.Duration
	Runs        int
	TestRepos   []string
	RepoWindows map[string]string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	repoBase := os.Args[1]

	config := BenchmarkConfig{
		RepoBase:  repoBase,
		Timeout:   5 * time.Minute,
		Runs:      5,
		TestRepos: []string{"cobra", "viper", "git", "kubernetes"},
		RepoWindows: map[string]string{
			"cobra":      "5 years ago",
			"viper":      "5 years ago",
			"git":        "2 years ago",
			"kubernetes": "1 year ago",
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that gitpulse binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if gitpulse is available
	if _, err := exec.LookPath("gitpulse"); err != nil {
		return fmt.Errorf("gitpulse binary not found in PATH")
	}

	// Check if repositories exist
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured repositories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per command\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)

		repoPath := filepath.Join(config.RepoBase, repo)

		// Full-history activity report
		result := runBenchmarkSuite(config, repo, repoPath, "report", "activity report", "")
		results = append(results, result)

		// Windowed contributor ranking
		window, hasWindow := config.RepoWindows[repo]
		if hasWindow {
			args := fmt.Sprintf("--since \"%s\" --top 25", window)
			desc := fmt.Sprintf("author ranking (since %s)", window)
			result = runBenchmarkSuite(config, repo, repoPath, "authors", desc, args)
			results = append(results, result)
		}

		// Full-history heatmap
		result = runBenchmarkSuite(config, repo, repoPath, "heatmap", "heatmap analysis", "")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs one command repeatedly and condenses the timings
func runBenchmarkSuite(config BenchmarkConfig, repo, repoPath, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, repo)

	times := runBenchmark(config, repoPath, command, extraArgs)

	bestTime, avgTime := "TIMEOUT", "TIMEOUT"
	if len(times) > 0 {
		best := times[0]
		var sum float64
		for _, t := range times {
			sum += t
			if t < best {
				best = t
			}
		}
		bestTime = fmt.Sprintf("%.3fs", best)
		avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	fmt.Printf("  Best: %s, Average: %s (%d/%d successful runs)\n", bestTime, avgTime, len(times), config.Runs)

	return BenchmarkResult{
		Repository: repo,
		Command:    command,
		BestTime:   bestTime,
		AvgTime:    avgTime,
	}
}

// runBenchmark executes a gitpulse command multiple times and returns the wall time of each successful run
func runBenchmark(config BenchmarkConfig, repoPath, command, extraArgs string) []float64 {
	// Prepare command arguments
	args := []string{command}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("gitpulse", args...)
		cmd.Dir = repoPath

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	return times
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Analysis completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/gitpulse_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"repo", "cmd", "best_time", "avg_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Repository, result.Command, result.BestTime, result.AvgTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "report", "Activity Report:")
	printCommandSummary(results, "authors", "Author Ranking:")
	printCommandSummary(results, "heatmap", "Heatmap Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: Best: %s, Avg: %s\n", result.Repository, result.BestTime, result.AvgTime)
		}
	}
}
