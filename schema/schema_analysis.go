package schema

import "time"

// AnalysisResult holds every diagnostic derived from one record set.
// It is rebuilt from scratch on each analysis run and never mutated after
// construction.
type AnalysisResult struct {
	TotalLines   int // Record count, equals input line count
	ErrorCount   int
	WarningCount int
	UniqueJobs   int // Distinct non-empty job names

	TimeRange   *TimeRange // nil when no record carries a timestamp
	LevelCounts map[Level]int

	JobStats          map[string]JobStats
	SlowestOperations []SlowOperation
	RootCauses        []RootCause

	DurationStats FieldStats
	RowsStats     FieldStats
	TotalRows     int64 // Sum of rows processed across all records with a count
}

// TimeRange is the span between the earliest and latest observed timestamps.
type TimeRange struct {
	Earliest time.Time
	Latest   time.Time
}

// JobStats summarizes all records that share one job name.
type JobStats struct {
	Occurrences int
	Errors      int
	Warnings    int
	// AvgDuration is the mean over only the records in this group that carry
	// a duration; nil when none do.
	AvgDuration *float64
}

// SlowOperation is one entry of the slowest-operations ranking.
type SlowOperation struct {
	LineNumber      int     `json:"line_number"`
	DurationSeconds float64 `json:"duration_seconds"`
	Preview         string  `json:"preview"` // Raw text truncated for display safety
}

// RootCause pairs a category with its occurrence count.
type RootCause struct {
	Category RootCauseCategory `json:"category"`
	Count    int               `json:"count"`
}

// FieldStats summarizes an optional numeric field across a record set.
// Records without the field contribute to neither Count nor the mean
// denominator; Count == 0 means no data.
type FieldStats struct {
	Count int
	Mean  float64
	Max   float64
}

// HasData reports whether any record contributed to these stats.
func (s FieldStats) HasData() bool {
	return s.Count > 0
}
