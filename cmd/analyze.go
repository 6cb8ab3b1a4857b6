package cmd

import (
	"github.com/huangsam/pipelog/core"
	"github.com/huangsam/pipelog/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full analysis pipeline over one log file.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <log-file>",
	Short: "Parse a log file and print the full analysis report.",
	Long: `Parse every line of a log file into structured records and print a
diagnostic report over the whole set.

The report covers:
- Summary counters (lines, errors, warnings, unique jobs, time range)
- Root cause analysis across error and warning records
- Performance metrics (duration and row throughput)
- Per-job statistics and the slowest operations

Examples:
  # Print a plain text report to the terminal
  pipelog analyze etl.log

  # Export the structured report as JSON
  pipelog analyze etl.log --output json --output-file report.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
