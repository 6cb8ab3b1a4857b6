package cmd

import (
	"github.com/huangsam/pipelog/core"
	"github.com/huangsam/pipelog/internal/contract"
	"github.com/spf13/cobra"
)

// searchCmd finds records containing a literal substring.
var searchCmd = &cobra.Command{
	Use:   "search <log-file> <query>",
	Short: "Search a log file for records matching a substring.",
	Long: `Search the raw text of every parsed record for a literal substring,
case-insensitively, and print the matches in file order.

Examples:
  # Find all connection problems
  pipelog search etl.log "connection timeout"

  # Export matches as JSON
  pipelog search etl.log timeout --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSearch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run search", err)
		}
	},
}
