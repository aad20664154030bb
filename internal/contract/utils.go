package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Heatmap shading glyphs, from idle to busiest.
const (
	IdleGlyph   = " " // IdleGlyph marks a cell with no commits.
	LowGlyph    = "░" // LowGlyph marks light activity.
	MediumGlyph = "▒" // MediumGlyph marks moderate activity.
	HighGlyph   = "▓" // HighGlyph marks heavy activity.
	PeakGlyph   = "█" // PeakGlyph marks the busiest cells.
)

// Color variables for console output.
var (
	PeakColor   = color.New(color.FgRed, color.Bold)     // peakColor highlights the busiest cells.
	HighColor   = color.New(color.FgMagenta, color.Bold) // highColor marks heavy activity.
	MediumColor = color.New(color.FgYellow)              // mediumColor marks moderate activity, not bold.
	LowColor    = color.New(color.FgCyan)                // lowColor marks light, low-priority activity.
)

// GetPlainGlyph returns the shading glyph for a heatmap cell based on its
// count relative to the busiest cell in the matrix. This is the core logic
// used for plain text printing.
func GetPlainGlyph(count, max int) string {
	if count == 0 || max == 0 {
		return IdleGlyph
	}
	ratio := float64(count) / float64(max)
	switch {
	case ratio >= 0.75:
		return PeakGlyph
	case ratio >= 0.5:
		return HighGlyph
	case ratio >= 0.25:
		return MediumGlyph
	default:
		return LowGlyph
	}
}

// GetColorGlyph returns a colored shading glyph for console output.
// It uses GetPlainGlyph to determine the glyph, and then applies the appropriate color.
func GetColorGlyph(count, max int) string {
	glyph := GetPlainGlyph(count, max)

	switch glyph {
	case PeakGlyph:
		return PeakColor.Sprint(glyph)
	case HighGlyph:
		return HighColor.Sprint(glyph)
	case MediumGlyph:
		return MediumColor.Sprint(glyph)
	case LowGlyph:
		return LowColor.Sprint(glyph)
	default: // idle
		return glyph
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path falls back to os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateIdentity truncates an author identity to a maximum width with ellipsis suffix.
// Identities read name-first, so the head is kept and the email tail trimmed.
// Requires maxWidth > 3 to ensure there's space for both content and the "..." suffix.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncateIdentity(identity string, maxWidth int) string {
	runes := []rune(identity)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return identity
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
