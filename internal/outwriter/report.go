package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/schema"
)

const reportRuleWidth = 100

// WriteAnalysisReport renders the analysis result in the configured output
// format. Text and JSON are supported; the record-oriented formats (csv,
// parquet) have no sensible report shape.
func WriteAnalysisReport(result *schema.AnalysisResult, cfg *contract.Config, fileName string, generatedAt time.Time, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		report := schema.BuildStructuredReport(result, fileName, generatedAt)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON report")
	case schema.CSVOut, schema.ParquetOut:
		return fmt.Errorf("analysis reports support text or json output, not %s", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := io.WriteString(w, RenderTextReport(result, fileName, generatedAt)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
			return err
		}, "Wrote report")
	}
}

// RenderTextReport renders the sectioned human-readable report. It is a pure
// function of the analysis result plus file identity and generation time, so
// it always agrees numerically with the structured export built from the
// same result.
func RenderTextReport(result *schema.AnalysisResult, fileName string, generatedAt time.Time) string {
	var b strings.Builder
	rule := strings.Repeat("=", reportRuleWidth)
	sep := strings.Repeat("-", reportRuleWidth)

	b.WriteString(rule + "\n")
	b.WriteString("ETL LOG ANALYSIS REPORT\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "File: %s\n", fileName)
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format(schema.ReportTimeLayout))
	fmt.Fprintf(&b, "Time Range: %s\n\n", schema.FormatTimeRange(result.TimeRange))

	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Total Lines:        %s\n", formatCount(int64(result.TotalLines)))
	fmt.Fprintf(&b, "Errors:             %s\n", formatCount(int64(result.ErrorCount)))
	fmt.Fprintf(&b, "Warnings:           %s\n", formatCount(int64(result.WarningCount)))
	fmt.Fprintf(&b, "Unique Jobs:        %d\n\n", result.UniqueJobs)

	b.WriteString("ROOT CAUSE ANALYSIS\n")
	b.WriteString(sep + "\n")
	if len(result.RootCauses) == 0 {
		b.WriteString("No obvious issues detected\n")
	} else {
		for _, rc := range result.RootCauses {
			b.WriteString(schema.FormatRootCause(rc) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("PERFORMANCE METRICS\n")
	b.WriteString(sep + "\n")
	if result.DurationStats.HasData() {
		fmt.Fprintf(&b, "Average Duration:   %.2fs\n", result.DurationStats.Mean)
		fmt.Fprintf(&b, "Max Duration:       %.2fs\n", result.DurationStats.Max)
	} else {
		b.WriteString("Average Duration:   N/A\n")
		b.WriteString("Max Duration:       N/A\n")
	}
	fmt.Fprintf(&b, "Total Rows:         %s\n\n", formatCount(result.TotalRows))

	if len(result.JobStats) > 0 {
		b.WriteString("JOB STATISTICS\n")
		b.WriteString(sep + "\n")
		fmt.Fprintf(&b, "%-40s %-10s %-10s %-10s %-15s\n", "Job Name", "Runs", "Errors", "Warnings", "Avg Duration")
		b.WriteString(sep + "\n")

		names := make([]string, 0, len(result.JobStats))
		for name := range result.JobStats {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			stats := result.JobStats[name]
			avgDur := "N/A"
			if stats.AvgDuration != nil {
				avgDur = fmt.Sprintf("%.2fs", *stats.AvgDuration)
			}
			fmt.Fprintf(&b, "%-40s %-10d %-10d %-10d %-15s\n",
				contract.TruncateText(name, 40), stats.Occurrences, stats.Errors, stats.Warnings, avgDur)
		}
		b.WriteString("\n")
	}

	if len(result.SlowestOperations) > 0 {
		fmt.Fprintf(&b, "TOP %d SLOWEST OPERATIONS\n", schema.SlowOperationLimit)
		b.WriteString(sep + "\n")
		for _, op := range result.SlowestOperations {
			fmt.Fprintf(&b, "Line %d: %.2fs - %s\n",
				op.LineNumber, op.DurationSeconds, contract.TruncateText(op.Preview, 80))
		}
		b.WriteString("\n")
	}

	return b.String()
}
