package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Limit:     contract.DefaultResultLimit,
		Precision: contract.DefaultPrecision,
	}
}

func writeTestLog(t *testing.T) string {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "etl.log")
	content := "2024-01-15 08:30:00 INFO Starting job: daily_sales\n" +
		"2024-01-15 08:31:00 ERROR Job daily_sales failed: connection timeout, duration: 90s\n" +
		"2024-01-15 08:32:00 INFO Loaded 1500 rows to target, duration: 30s\n"
	require.NoError(t, os.WriteFile(logPath, []byte(content), 0o644))
	return logPath
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestNewMCPServer(t *testing.T) {
	s := NewMCPServer(baseConfig())
	assert.NotNil(t, s)
}

func TestHandleAnalyzeLog(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}
	logPath := writeTestLog(t)

	res, err := h.handleAnalyzeLog(context.Background(), callRequest("analyze_log", map[string]any{
		"log_path": logPath,
	}))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.False(t, res.IsError)

	var report schema.StructuredReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, 3, report.Summary.TotalLines)
	assert.Equal(t, 1, report.Summary.ErrorCount)
	assert.Contains(t, report.Jobs, "daily_sales")
}

func TestHandleAnalyzeLogMissingPath(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}

	res, err := h.handleAnalyzeLog(context.Background(), callRequest("analyze_log", map[string]any{}))
	require.NoError(t, err, "handlers report tool logic failures in the result, not as raw errors")
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "log_path is required")
}

func TestHandleSearchLog(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}
	logPath := writeTestLog(t)

	res, err := h.handleSearchLog(context.Background(), callRequest("search_log", map[string]any{
		"log_path": logPath,
		"query":    "connection timeout",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var matches []schema.LogRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].LineNumber)
}

func TestHandleSearchLogMissingQuery(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}
	logPath := writeTestLog(t)

	res, err := h.handleSearchLog(context.Background(), callRequest("search_log", map[string]any{
		"log_path": logPath,
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "query is required")
}

func TestHandleSearchLogLimit(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}
	logPath := writeTestLog(t)

	res, err := h.handleSearchLog(context.Background(), callRequest("search_log", map[string]any{
		"log_path": logPath,
		"query":    "2024-01-15",
		"limit":    2.0,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var matches []schema.LogRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &matches))
	assert.Len(t, matches, 2)
}

func TestHandleGetSlowestOperations(t *testing.T) {
	h := &toolHandler{baseCfg: baseConfig()}
	logPath := writeTestLog(t)

	res, err := h.handleGetSlowestOperations(context.Background(), callRequest("get_slowest_operations", map[string]any{
		"log_path": logPath,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var ops []schema.SlowOperation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &ops))
	require.Len(t, ops, 2)
	assert.Equal(t, 2, ops[0].LineNumber)
	assert.InDelta(t, 90.0, ops[0].DurationSeconds, 1e-9)
}
