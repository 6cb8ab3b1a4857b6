// Package parquet exports parsed log record sets to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/pipelog/schema"
	"github.com/parquet-go/parquet-go"
)

// LogRecordRow is the columnar form of one log record. Optional fields are
// nullable so recognition misses survive the export unchanged.
type LogRecordRow struct {
	// LineNumber is the 1-based position in the source file
	LineNumber int32 `parquet:"line_number,snappy"`

	// Timestamp is the parsed event time (nullable)
	Timestamp *time.Time `parquet:"timestamp,optional,snappy"`

	// Level is the severity classification
	Level string `parquet:"level,snappy"`

	// JobName is the job/workflow/session identifier (nullable)
	JobName *string `parquet:"job_name,optional,snappy"`

	// DurationSeconds is the elapsed time normalized to seconds (nullable)
	DurationSeconds *float64 `parquet:"duration_seconds,optional,snappy"`

	// RowsProcessed is the row/record count (nullable)
	RowsProcessed *int64 `parquet:"rows_processed,optional,snappy"`

	// IsError reports whether the record classified as an error
	IsError bool `parquet:"is_error,snappy"`

	// IsWarning reports whether the record classified as a warning
	IsWarning bool `parquet:"is_warning,snappy"`

	// RawText is the verbatim line content
	RawText string `parquet:"raw_text,snappy"`
}

// ConvertLogRecords converts schema.LogRecord values into their Parquet row
// form.
func ConvertLogRecords(records []schema.LogRecord) []LogRecordRow {
	rows := make([]LogRecordRow, len(records))
	for i, r := range records {
		var jobName *string
		if r.JobName != "" {
			name := r.JobName
			jobName = &name
		}
		rows[i] = LogRecordRow{
			LineNumber:      int32(r.LineNumber),
			Timestamp:       r.Timestamp,
			Level:           string(r.Level),
			JobName:         jobName,
			DurationSeconds: r.DurationSeconds,
			RowsProcessed:   r.RowsProcessed,
			IsError:         r.IsError,
			IsWarning:       r.IsWarning,
			RawText:         r.RawText,
		}
	}
	return rows
}

// WriteRecords writes a record set to a Parquet file at outputPath.
func WriteRecords(records []schema.LogRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the LogRecordRow struct tags
	writer := parquet.NewGenericWriter[LogRecordRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertLogRecords(records)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
