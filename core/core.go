package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/internal/outwriter"
	"github.com/huangsam/pipelog/schema"
)

// ExecutorFunc defines the function signature for executing different
// analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// LoadRecords reads the configured log file and parses it into a record set.
// Failing to obtain the file text is the only error this layer can surface;
// parsing itself never fails.
func LoadRecords(cfg *contract.Config) ([]schema.LogRecord, error) {
	data, err := os.ReadFile(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read log file: %w", err)
	}
	return Parse(string(data)), nil
}

// ExecuteAnalyze parses the configured log file, derives the full analysis
// result, and renders the report in the configured output format.
// It serves as the main entry point for the 'analyze' mode.
func ExecuteAnalyze(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	records, err := LoadRecords(cfg)
	if err != nil {
		return err
	}
	result := Analyze(records)
	duration := time.Since(start)
	return outwriter.WriteAnalysisReport(result, cfg, filepath.Base(cfg.LogPath), time.Now(), duration)
}

// ExecuteRecords parses the configured log file and dumps the structured
// record set. It serves as the main entry point for the 'records' mode.
func ExecuteRecords(_ context.Context, cfg *contract.Config) error {
	records, err := LoadRecords(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteRecords(records, cfg)
}

// ExecuteSearch parses the configured log file and prints every record
// matching the configured query. It serves as the main entry point for the
// 'search' mode.
func ExecuteSearch(_ context.Context, cfg *contract.Config) error {
	records, err := LoadRecords(cfg)
	if err != nil {
		return err
	}
	matches := Search(records, cfg.Query)
	return outwriter.WriteSearchResults(matches, cfg.Query, cfg)
}
