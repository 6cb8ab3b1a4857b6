// Package outwriter has output and writer logic for reports, record dumps
// and search results.
package outwriter

import (
	"os"

	"github.com/huangsam/pipelog/internal/contract"
	"golang.org/x/term"
)

// getMaxTableTextWidth calculates the maximum width for raw-text columns in
// table output based on terminal width and the fixed columns already present.
func getMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (line, level, timestamp, job,
	// duration, rows) plus table borders and padding.
	const baseWidth = 70

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 80 {
		return 80
	}
	return available
}
