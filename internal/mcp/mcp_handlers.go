package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/pipelog/core"
	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// loadRecords resolves the log_path argument and parses the file.
func (h *toolHandler) loadRecords(request mcp.CallToolRequest) ([]schema.LogRecord, *mcp.CallToolResult) {
	cfg := h.baseCfg.Clone()
	cfg.LogPath = request.GetString("log_path", "")
	if cfg.LogPath == "" {
		return nil, mcp.NewToolResultError("log_path is required")
	}

	records, err := core.LoadRecords(cfg)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err))
	}
	return records, nil
}

func (h *toolHandler) handleAnalyzeLog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, errResult := h.loadRecords(request)
	if errResult != nil {
		return errResult, nil
	}

	result := core.Analyze(records)
	report := schema.BuildStructuredReport(result, request.GetString("log_path", ""), time.Now())
	jsonData, _ := json.MarshalIndent(report, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSearchLog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	records, errResult := h.loadRecords(request)
	if errResult != nil {
		return errResult, nil
	}

	matches := core.Search(records, query)
	if l := request.GetInt("limit", 0); l > 0 && len(matches) > l {
		matches = matches[:l]
	}

	jsonData, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSlowestOperations(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, errResult := h.loadRecords(request)
	if errResult != nil {
		return errResult, nil
	}

	result := core.Analyze(records)
	jsonData, _ := json.MarshalIndent(result.SlowestOperations, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
