package core

import (
	"strings"

	"github.com/huangsam/pipelog/schema"
)

// Parse splits the full text of a log file into lines and builds one record
// per line, preserving order and 1-based numbering. Blank lines still produce
// a record, so the record count always equals the input line count. A single
// trailing newline terminates the last line rather than opening an empty one.
func Parse(text string) []schema.LogRecord {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	records := make([]schema.LogRecord, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		records = append(records, buildRecord(i+1, line))
	}
	return records
}

// buildRecord combines the classifier and all four independent extractions
// into one immutable record. Extraction misses leave fields absent.
func buildRecord(lineNumber int, line string) schema.LogRecord {
	level := ClassifyLine(line)
	return schema.LogRecord{
		LineNumber:      lineNumber,
		RawText:         line,
		Timestamp:       ExtractTimestamp(line),
		Level:           level,
		JobName:         ExtractJobName(line),
		DurationSeconds: ExtractDuration(line),
		RowsProcessed:   ExtractRowsProcessed(line),
		IsError:         level == schema.ErrorLevel,
		IsWarning:       level == schema.WarningLevel,
	}
}

// Errors returns the subset of records classified as errors, in order.
func Errors(records []schema.LogRecord) []schema.LogRecord {
	return filterRecords(records, func(r schema.LogRecord) bool { return r.IsError })
}

// Warnings returns the subset of records classified as warnings, in order.
func Warnings(records []schema.LogRecord) []schema.LogRecord {
	return filterRecords(records, func(r schema.LogRecord) bool { return r.IsWarning })
}

func filterRecords(records []schema.LogRecord, keep func(schema.LogRecord) bool) []schema.LogRecord {
	var out []schema.LogRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
