// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the pipelog MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Pipelog Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_log ---
	s.AddTool(mcp.NewTool("analyze_log",
		mcp.WithDescription("Parse an ETL log file and return the full analysis report: summary counters, root causes, performance stats, per-job statistics."),
		mcp.WithString("log_path", mcp.Description("Path to the log file to analyze."), mcp.Required()),
	), h.handleAnalyzeLog)

	// --- 2. Tool: search_log ---
	s.AddTool(mcp.NewTool("search_log",
		mcp.WithDescription("Search a log file for records containing a literal substring (case-insensitive)."),
		mcp.WithString("log_path", mcp.Description("Path to the log file to search."), mcp.Required()),
		mcp.WithString("query", mcp.Description("Literal substring to search for."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of matches returned.")),
	), h.handleSearchLog)

	// --- 3. Tool: get_slowest_operations ---
	s.AddTool(mcp.NewTool("get_slowest_operations",
		mcp.WithDescription("Return the slowest operations found in a log file, ranked by duration."),
		mcp.WithString("log_path", mcp.Description("Path to the log file to analyze."), mcp.Required()),
	), h.handleGetSlowestOperations)

	return s
}

// StartMCPServer starts the pipelog MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
