package cmd

import (
	"github.com/huangsam/pipelog/core"
	"github.com/huangsam/pipelog/internal/contract"
	"github.com/spf13/cobra"
)

// recordsCmd dumps the parsed records without analysis.
var recordsCmd = &cobra.Command{
	Use:   "records <log-file>",
	Short: "Parse a log file and print the structured records.",
	Long: `Parse every line of a log file and print the resulting records, one
per input line, with the fields recognized on each line.

Examples:
  # Show the first records as a table
  pipelog records etl.log --limit 20

  # Export all records for downstream tooling
  pipelog records etl.log --output csv --output-file records.csv
  pipelog records etl.log --output parquet --output-file records.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecords(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot dump records", err)
		}
	},
}
