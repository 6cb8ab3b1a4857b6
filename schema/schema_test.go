package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecordJSONOmitsAbsentFields(t *testing.T) {
	record := LogRecord{
		LineNumber: 7,
		RawText:    "plain line",
		Level:      UnknownLevel,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "timestamp")
	assert.NotContains(t, decoded, "job_name")
	assert.NotContains(t, decoded, "duration_seconds")
	assert.NotContains(t, decoded, "rows_processed")
	assert.Equal(t, float64(7), decoded["line_number"])
	assert.Equal(t, "UNKNOWN", decoded["level"])
}

func TestLogRecordJSONKeepsPresentFields(t *testing.T) {
	ts := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)
	duration := 44.5
	rows := int64(149975)
	record := LogRecord{
		LineNumber:      1,
		RawText:         "full line",
		Timestamp:       &ts,
		Level:           InfoLevel,
		JobName:         "daily_sales",
		DurationSeconds: &duration,
		RowsProcessed:   &rows,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "daily_sales", decoded["job_name"])
	assert.Equal(t, 44.5, decoded["duration_seconds"])
	assert.Equal(t, float64(149975), decoded["rows_processed"])
}

func TestValidOutputModes(t *testing.T) {
	for _, mode := range []OutputMode{TextOut, CSVOut, JSONOut, ParquetOut} {
		_, ok := ValidOutputModes[mode]
		assert.True(t, ok, "mode %s should be valid", mode)
	}
	_, ok := ValidOutputModes[OutputMode("xml")]
	assert.False(t, ok)
}

func TestFieldStatsHasData(t *testing.T) {
	assert.False(t, FieldStats{}.HasData())
	assert.True(t, FieldStats{Count: 1, Mean: 5, Max: 5}.HasData())
}

func TestCategoryOrderCoversAllCategories(t *testing.T) {
	assert.Len(t, AllRootCauseCategories, 5)
	assert.Equal(t, ConnectionCause, AllRootCauseCategories[0])
	assert.Equal(t, PerformanceCause, AllRootCauseCategories[4])
}
