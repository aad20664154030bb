package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultTopContributors = 10
	MaxTopContributors     = 1000
	DefaultPrecision       = 1
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for one analysis run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath        string
	StartTime       time.Time // Zero value means unbounded history
	EndTime         time.Time // Zero value means no upper bound
	AuthorFilter    string    // Case-insensitive substring match on author identity
	TopContributors int
	Precision       int
	Output          schema.OutputMode
	OutputFile      string
	Width           int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored cells in heatmap output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Since      string `mapstructure:"since"`
	Until      string `mapstructure:"until"`
	Author     string `mapstructure:"author"`
	Top        int    `mapstructure:"top"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithTimeWindow creates a copy of the Config with new time bounds.
func (c *Config) CloneWithTimeWindow(start, end time.Time) *Config {
	clone := c.Clone()
	clone.StartTime = start
	clone.EndTime = end
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.AuthorFilter = strings.TrimSpace(input.Author)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- Top Validation ---
	if input.Top <= 0 || input.Top > MaxTopContributors {
		return fmt.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxTopContributors, input.Top)
	}
	cfg.TopContributors = input.Top

	// --- Precision Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet, sqlite", input.Output)
	}
	if _, ok := schema.FileOnlyOutputModes[cfg.Output]; ok && cfg.OutputFile == "" {
		return fmt.Errorf("output format '%s' requires --output-file", cfg.Output)
	}

	return nil
}

// processTimeRange handles date parsing and time range validation. With no
// bounds given, the whole history is analyzed.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	return applyTimeWindow(cfg, input.Since, input.Until, "--since", "--until")
}

// RevalidateTimeWindow applies raw since/until bounds to an existing config.
// MCP handlers use it for per-call arguments that bypass the flag pipeline.
func RevalidateTimeWindow(cfg *Config, since, until string) error {
	return applyTimeWindow(cfg, since, until, "since", "until")
}

func applyTimeWindow(cfg *Config, since, until, sinceFlag, untilFlag string) error {
	now := time.Now()

	if since != "" {
		t, err := parseTimeBound(since, sinceFlag, now)
		if err != nil {
			return err
		}
		cfg.StartTime = t
	}

	if until != "" {
		t, err := parseTimeBound(until, untilFlag, now)
		if err != nil {
			return err
		}
		cfg.EndTime = t
	}

	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}

	return nil
}

// parseTimeBound accepts an absolute ISO8601 timestamp or a relative
// "N [units] ago" expression.
func parseTimeBound(s, flag string, now time.Time) (time.Time, error) {
	t, err := time.Parse(DateTimeFormat, s)
	if err == nil {
		return t, nil
	}
	t, relErr := ParseRelativeTime(s, now)
	if relErr != nil {
		return time.Time{}, fmt.Errorf("invalid %s date format for '%s'. Expected absolute ISO8601 or 'N [units] ago': %v", flag, s, err)
	}
	return t, nil
}

// resolveGitPath resolves the repo path argument to the repository root.
// A file path resolves through its parent directory, so 'gitpulse report
// some/file.go' works the same as pointing at the repo.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	gitContextPath := absSearchPath
	if info, statErr := os.Stat(absSearchPath); statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot

	return nil
}
