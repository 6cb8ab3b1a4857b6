package core

import (
	"sort"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/schema"
)

// Analyze computes a full AnalysisResult from one record set. The result is
// freshly allocated on every call; an empty record set yields zeroed counters
// and no-data statistics, never an error.
func Analyze(records []schema.LogRecord) *schema.AnalysisResult {
	result := &schema.AnalysisResult{
		TotalLines:  len(records),
		LevelCounts: make(map[schema.Level]int),
	}

	jobNames := make(map[string]struct{})
	for _, r := range records {
		result.LevelCounts[r.Level]++
		if r.IsError {
			result.ErrorCount++
		}
		if r.IsWarning {
			result.WarningCount++
		}
		if r.JobName != "" {
			jobNames[r.JobName] = struct{}{}
		}
		if r.RowsProcessed != nil {
			result.TotalRows += *r.RowsProcessed
		}
	}
	result.UniqueJobs = len(jobNames)

	result.TimeRange = timeRange(records)
	result.JobStats = jobStats(records)
	result.SlowestOperations = slowestOperations(records, schema.SlowOperationLimit)
	result.RootCauses = ClassifyRootCauses(records)
	result.DurationStats = fieldStats(records, func(r schema.LogRecord) *float64 { return r.DurationSeconds })
	result.RowsStats = fieldStats(records, func(r schema.LogRecord) *float64 {
		if r.RowsProcessed == nil {
			return nil
		}
		v := float64(*r.RowsProcessed)
		return &v
	})

	return result
}

// timeRange returns the span of observed timestamps, or nil when no record
// carries one.
func timeRange(records []schema.LogRecord) *schema.TimeRange {
	var tr *schema.TimeRange
	for _, r := range records {
		if r.Timestamp == nil {
			continue
		}
		ts := *r.Timestamp
		if tr == nil {
			tr = &schema.TimeRange{Earliest: ts, Latest: ts}
			continue
		}
		if ts.Before(tr.Earliest) {
			tr.Earliest = ts
		}
		if ts.After(tr.Latest) {
			tr.Latest = ts
		}
	}
	return tr
}

// jobStats groups records by non-empty job name. Records without a job name
// are excluded entirely rather than pooled under a synthetic bucket.
func jobStats(records []schema.LogRecord) map[string]schema.JobStats {
	type jobAccum struct {
		stats         schema.JobStats
		durationSum   float64
		durationCount int
	}

	accums := make(map[string]*jobAccum)
	for _, r := range records {
		if r.JobName == "" {
			continue
		}
		acc := accums[r.JobName]
		if acc == nil {
			acc = &jobAccum{}
			accums[r.JobName] = acc
		}
		acc.stats.Occurrences++
		if r.IsError {
			acc.stats.Errors++
		}
		if r.IsWarning {
			acc.stats.Warnings++
		}
		if r.DurationSeconds != nil {
			acc.durationSum += *r.DurationSeconds
			acc.durationCount++
		}
	}

	stats := make(map[string]schema.JobStats, len(accums))
	for name, acc := range accums {
		if acc.durationCount > 0 {
			mean := acc.durationSum / float64(acc.durationCount)
			acc.stats.AvgDuration = &mean
		}
		stats[name] = acc.stats
	}
	return stats
}

// slowestOperations ranks duration-bearing records by duration descending,
// breaking ties by ascending line number, and keeps the top 'limit'.
func slowestOperations(records []schema.LogRecord, limit int) []schema.SlowOperation {
	var timed []schema.LogRecord
	for _, r := range records {
		if r.DurationSeconds != nil {
			timed = append(timed, r)
		}
	}
	sort.Slice(timed, func(i, j int) bool {
		di, dj := *timed[i].DurationSeconds, *timed[j].DurationSeconds
		if di != dj {
			return di > dj
		}
		return timed[i].LineNumber < timed[j].LineNumber
	})
	if len(timed) > limit {
		timed = timed[:limit]
	}

	ops := make([]schema.SlowOperation, 0, len(timed))
	for _, r := range timed {
		ops = append(ops, schema.SlowOperation{
			LineNumber:      r.LineNumber,
			DurationSeconds: *r.DurationSeconds,
			Preview:         contract.TruncateText(r.RawText, schema.PreviewWidth),
		})
	}
	return ops
}

// fieldStats computes count, mean and max over records exposing an optional
// numeric field. Absent fields are excluded from the mean denominator.
func fieldStats(records []schema.LogRecord, value func(schema.LogRecord) *float64) schema.FieldStats {
	var stats schema.FieldStats
	var sum float64
	for _, r := range records {
		v := value(r)
		if v == nil {
			continue
		}
		if stats.Count == 0 || *v > stats.Max {
			stats.Max = *v
		}
		sum += *v
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Mean = sum / float64(stats.Count)
	}
	return stats
}
