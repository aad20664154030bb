package outwriter

import (
	"os"

	"github.com/gitpulse/gitpulse/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableIdentityWidth calculates the maximum width for author identities
// in table output based on terminal width and table configuration.
func GetMaxTableIdentityWidth(cfg *contract.Config, withDates bool) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 25 // Rank + Commits + Share with borders/padding

	// Add date columns with formatting
	if withDates {
		baseWidth += 26 // First + Last calendar dates with formatting
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the identity
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable identity width
		return 15
	}
	if available > 70 {
		// Maximum identity width to prevent overly wide tables
		return 70
	}
	return available
}
