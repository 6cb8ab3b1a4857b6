package core

import (
	"testing"
	"time"

	"github.com/huangsam/pipelog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt64(v int64) *int64     { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

func TestAnalyzeEmptyInput(t *testing.T) {
	result := Analyze(nil)
	require.NotNil(t, result)

	assert.Zero(t, result.TotalLines)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
	assert.Zero(t, result.UniqueJobs)
	assert.Nil(t, result.TimeRange)
	assert.Empty(t, result.JobStats)
	assert.Empty(t, result.SlowestOperations)
	assert.Empty(t, result.RootCauses)
	assert.False(t, result.DurationStats.HasData())
	assert.False(t, result.RowsStats.HasData())
	assert.Zero(t, result.TotalRows)
}

func TestAnalyzeSummaryCounters(t *testing.T) {
	text := "2024-01-15 08:30:00 INFO Starting job: daily_sales\n" +
		"2024-01-15 08:31:00 ERROR Job daily_sales failed: connection timeout\n" +
		"2024-01-15 08:32:00 WARN Job hourly_sync running slow\n" +
		"2024-01-15 08:33:00 INFO Job hourly_sync processed 500 records\n" +
		"2024-01-15 08:34:00 Job daily_sales completed, 1500 rows loaded"
	result := Analyze(Parse(text))

	assert.Equal(t, 5, result.TotalLines)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, 2, result.UniqueJobs)
	assert.Equal(t, int64(2000), result.TotalRows)

	// Level counts partition the record set
	total := 0
	for _, n := range result.LevelCounts {
		total += n
	}
	assert.Equal(t, result.TotalLines, total)
	assert.Equal(t, 1, result.LevelCounts[schema.ErrorLevel])
	assert.Equal(t, 1, result.LevelCounts[schema.WarningLevel])
	assert.Equal(t, 1, result.LevelCounts[schema.SuccessLevel])
	assert.Equal(t, 2, result.LevelCounts[schema.InfoLevel])

	require.NotNil(t, result.TimeRange)
	assert.Equal(t, "2024-01-15T08:30:00Z", result.TimeRange.Earliest.Format(time.RFC3339))
	assert.Equal(t, "2024-01-15T08:34:00Z", result.TimeRange.Latest.Format(time.RFC3339))
}

func TestAnalyzeJobStats(t *testing.T) {
	records := []schema.LogRecord{
		{LineNumber: 1, JobName: "etl_a", DurationSeconds: ptrFloat(10)},
		{LineNumber: 2, JobName: "etl_a", Level: schema.ErrorLevel, IsError: true},
		{LineNumber: 3, JobName: "etl_a", DurationSeconds: ptrFloat(20)},
		{LineNumber: 4, JobName: "etl_b", Level: schema.WarningLevel, IsWarning: true},
		{LineNumber: 5, RawText: "no job on this line"},
	}
	result := Analyze(records)

	require.Len(t, result.JobStats, 2)

	a := result.JobStats["etl_a"]
	assert.Equal(t, 3, a.Occurrences)
	assert.Equal(t, 1, a.Errors)
	assert.Equal(t, 0, a.Warnings)
	require.NotNil(t, a.AvgDuration)
	assert.InDelta(t, 15.0, *a.AvgDuration, 1e-9)

	b := result.JobStats["etl_b"]
	assert.Equal(t, 1, b.Occurrences)
	assert.Equal(t, 1, b.Warnings)
	assert.Nil(t, b.AvgDuration)
}

func TestAnalyzeSlowestOperations(t *testing.T) {
	records := []schema.LogRecord{
		{LineNumber: 1, RawText: "fast", DurationSeconds: ptrFloat(10)},
		{LineNumber: 2, RawText: "slowest", DurationSeconds: ptrFloat(90)},
		{LineNumber: 3, RawText: "untimed"},
		{LineNumber: 4, RawText: "tied, earlier line", DurationSeconds: ptrFloat(30)},
		{LineNumber: 5, RawText: "tied, later line", DurationSeconds: ptrFloat(30)},
	}
	// Swap so the tie pair appears out of line order in the input slice
	records[3], records[4] = records[4], records[3]

	result := Analyze(records)
	require.Len(t, result.SlowestOperations, 4)

	assert.Equal(t, 2, result.SlowestOperations[0].LineNumber)
	assert.InDelta(t, 90.0, result.SlowestOperations[0].DurationSeconds, 1e-9)
	assert.Equal(t, "slowest", result.SlowestOperations[0].Preview)

	// Equal durations rank by ascending line number
	assert.Equal(t, 4, result.SlowestOperations[1].LineNumber)
	assert.Equal(t, 5, result.SlowestOperations[2].LineNumber)
	assert.Equal(t, 1, result.SlowestOperations[3].LineNumber)
}

func TestAnalyzeSlowestOperationsLimit(t *testing.T) {
	var records []schema.LogRecord
	for i := 1; i <= schema.SlowOperationLimit+5; i++ {
		records = append(records, schema.LogRecord{
			LineNumber:      i,
			RawText:         "op",
			DurationSeconds: ptrFloat(float64(i)),
		})
	}
	result := Analyze(records)

	require.Len(t, result.SlowestOperations, schema.SlowOperationLimit)
	// Largest duration first
	assert.InDelta(t, float64(schema.SlowOperationLimit+5), result.SlowestOperations[0].DurationSeconds, 1e-9)
}

func TestAnalyzeFieldStats(t *testing.T) {
	records := []schema.LogRecord{
		{LineNumber: 1, DurationSeconds: ptrFloat(10), RowsProcessed: ptrInt64(100)},
		{LineNumber: 2, DurationSeconds: ptrFloat(30)},
		{LineNumber: 3, RowsProcessed: ptrInt64(300)},
		{LineNumber: 4},
	}
	result := Analyze(records)

	assert.True(t, result.DurationStats.HasData())
	assert.Equal(t, 2, result.DurationStats.Count)
	assert.InDelta(t, 20.0, result.DurationStats.Mean, 1e-9)
	assert.InDelta(t, 30.0, result.DurationStats.Max, 1e-9)

	assert.True(t, result.RowsStats.HasData())
	assert.Equal(t, 2, result.RowsStats.Count)
	assert.InDelta(t, 200.0, result.RowsStats.Mean, 1e-9)
	assert.InDelta(t, 300.0, result.RowsStats.Max, 1e-9)
	assert.Equal(t, int64(400), result.TotalRows)
}

func TestAnalyzeTimeRangeSingleTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)
	records := []schema.LogRecord{
		{LineNumber: 1},
		{LineNumber: 2, Timestamp: ptrTime(ts)},
		{LineNumber: 3},
	}
	result := Analyze(records)

	require.NotNil(t, result.TimeRange)
	assert.Equal(t, ts, result.TimeRange.Earliest)
	assert.Equal(t, ts, result.TimeRange.Latest)
}
