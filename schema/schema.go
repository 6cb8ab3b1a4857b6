// Package schema has configs, models and constants for all parts of pipelog.
package schema

import "time"

// LogRecord is the structured result of parsing a single log line.
// Every input line produces exactly one record; fields that no recognized
// pattern matched are left absent (nil pointers or empty strings) rather
// than causing a parse failure.
type LogRecord struct {
	LineNumber      int        `json:"line_number"`                // 1-based position in the source file
	RawText         string     `json:"raw_text"`                   // Verbatim line content without trailing newline
	Timestamp       *time.Time `json:"timestamp,omitempty"`        // Parsed timestamp, nil when unrecognized
	Level           Level      `json:"level"`                      // Severity classification, never empty
	JobName         string     `json:"job_name,omitempty"`         // Job/workflow/session identifier, "" when absent
	DurationSeconds *float64   `json:"duration_seconds,omitempty"` // Elapsed time normalized to seconds
	RowsProcessed   *int64     `json:"rows_processed,omitempty"`   // Row/record count, nil when absent
	IsError         bool       `json:"is_error"`                   // True iff Level == ErrorLevel
	IsWarning       bool       `json:"is_warning"`                 // True iff Level == WarningLevel
}
