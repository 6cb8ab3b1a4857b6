package schema

import (
	"fmt"
	"time"
)

// ReportTimeLayout is the timestamp layout used in report headers and the
// time-range summary.
const ReportTimeLayout = "2006-01-02 15:04:05"

// StructuredReport is the key-mapping export of an AnalysisResult. Its field
// names are part of the external contract and must stay stable.
type StructuredReport struct {
	File        string                    `json:"file"`
	GeneratedAt string                    `json:"generated_at"`
	Summary     ReportSummary             `json:"summary"`
	RootCauses  []string                  `json:"root_causes"`
	Performance ReportPerformance         `json:"performance"`
	Jobs        map[string]ReportJobStats `json:"jobs"`
}

// ReportSummary carries the scalar counters of a report.
type ReportSummary struct {
	TotalLines   int    `json:"total_lines"`
	ErrorCount   int    `json:"error_count"`
	WarningCount int    `json:"warning_count"`
	UniqueJobs   int    `json:"unique_jobs"`
	TimeRange    string `json:"time_range"`
}

// ReportPerformance carries duration and volume aggregates. Averages and
// maxima are null when no record carried the underlying field.
type ReportPerformance struct {
	AvgDuration        *float64 `json:"avg_duration"`
	MaxDuration        *float64 `json:"max_duration"`
	TotalRowsProcessed int64    `json:"total_rows_processed"`
}

// ReportJobStats mirrors JobStats with stable export field names.
type ReportJobStats struct {
	Occurrences int      `json:"occurrences"`
	Errors      int      `json:"errors"`
	Warnings    int      `json:"warnings"`
	AvgDuration *float64 `json:"avg_duration"`
}

// FormatTimeRange renders a time range as "start to end", or "Unknown" when
// no timestamps were observed.
func FormatTimeRange(tr *TimeRange) string {
	if tr == nil {
		return "Unknown"
	}
	return tr.Earliest.Format(ReportTimeLayout) + " to " + tr.Latest.Format(ReportTimeLayout)
}

// FormatRootCause renders one root cause as "<label>: <count> occurrences".
func FormatRootCause(rc RootCause) string {
	return fmt.Sprintf("%s: %d occurrences", rc.Category, rc.Count)
}

// BuildStructuredReport converts an AnalysisResult into its structured export
// form. It performs no additional computation, so it can never disagree with
// the text rendering derived from the same result.
func BuildStructuredReport(result *AnalysisResult, fileName string, generatedAt time.Time) StructuredReport {
	causes := make([]string, 0, len(result.RootCauses))
	for _, rc := range result.RootCauses {
		causes = append(causes, FormatRootCause(rc))
	}

	jobs := make(map[string]ReportJobStats, len(result.JobStats))
	for name, stats := range result.JobStats {
		jobs[name] = ReportJobStats{
			Occurrences: stats.Occurrences,
			Errors:      stats.Errors,
			Warnings:    stats.Warnings,
			AvgDuration: stats.AvgDuration,
		}
	}

	var avgDuration, maxDuration *float64
	if result.DurationStats.HasData() {
		mean := result.DurationStats.Mean
		maxVal := result.DurationStats.Max
		avgDuration = &mean
		maxDuration = &maxVal
	}

	return StructuredReport{
		File:        fileName,
		GeneratedAt: generatedAt.Format(ReportTimeLayout),
		Summary: ReportSummary{
			TotalLines:   result.TotalLines,
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
			UniqueJobs:   result.UniqueJobs,
			TimeRange:    FormatTimeRange(result.TimeRange),
		},
		RootCauses: causes,
		Performance: ReportPerformance{
			AvgDuration:        avgDuration,
			MaxDuration:        maxDuration,
			TotalRowsProcessed: result.TotalRows,
		},
		Jobs: jobs,
	}
}
