// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitpulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: repo_report ---
	s.AddTool(mcp.NewTool("repo_report",
		mcp.WithDescription("Analyze git history and return the full activity report: totals, heatmap, peaks, contributors and streaks."),
		mcp.WithString("repo", mcp.Description("Path to the Git repository."), mcp.Required()),
		mcp.WithString("since", mcp.Description("Lower time bound, ISO8601 or relative (e.g. '6 months ago').")),
		mcp.WithString("until", mcp.Description("Upper time bound, ISO8601 or relative.")),
		mcp.WithString("author", mcp.Description("Case-insensitive substring filter on author name or email.")),
		mcp.WithNumber("top", mcp.Description("Limit the number of contributors returned.")),
	), h.handleRepoReport)

	// --- 2. Tool: repo_authors ---
	s.AddTool(mcp.NewTool("repo_authors",
		mcp.WithDescription("Analyze git history and return the ranked contributor breakdown."),
		mcp.WithString("repo", mcp.Description("Path to the Git repository."), mcp.Required()),
		mcp.WithString("since", mcp.Description("Lower time bound, ISO8601 or relative (e.g. '6 months ago').")),
		mcp.WithString("until", mcp.Description("Upper time bound, ISO8601 or relative.")),
		mcp.WithString("author", mcp.Description("Case-insensitive substring filter on author name or email.")),
		mcp.WithNumber("top", mcp.Description("Limit the number of contributors returned.")),
	), h.handleRepoAuthors)

	// --- 3. Tool: repo_heatmap ---
	s.AddTool(mcp.NewTool("repo_heatmap",
		mcp.WithDescription("Analyze git history and return the weekday/hour commit heatmap with peak indices."),
		mcp.WithString("repo", mcp.Description("Path to the Git repository."), mcp.Required()),
		mcp.WithString("since", mcp.Description("Lower time bound, ISO8601 or relative (e.g. '6 months ago').")),
		mcp.WithString("until", mcp.Description("Upper time bound, ISO8601 or relative.")),
	), h.handleRepoHeatmap)

	return s
}

// StartMCPServer starts the gitpulse MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
