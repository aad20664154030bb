package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// configForRequest clones the base config and applies the per-call repo and
// time-window arguments shared by every tool.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	repo := request.GetString("repo", "")
	if repo == "" {
		return nil, fmt.Errorf("repo is required")
	}
	cfg.RepoPath = repo

	since := request.GetString("since", "")
	until := request.GetString("until", "")
	if err := contract.RevalidateTimeWindow(cfg, since, until); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (h *toolHandler) handleRepoReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if a := request.GetString("author", ""); a != "" {
		cfg.AuthorFilter = strings.TrimSpace(a)
	}
	if n := request.GetInt("top", 0); n > 0 {
		cfg.TopContributors = n
	}

	result, err := core.RunAnalysis(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRepoAuthors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if a := request.GetString("author", ""); a != "" {
		cfg.AuthorFilter = strings.TrimSpace(a)
	}
	if n := request.GetInt("top", 0); n > 0 {
		cfg.TopContributors = n
	}

	result, err := core.RunAnalysis(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	enriched := schema.EnrichContributors(result.Report, cfg.TopContributors)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRepoHeatmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := core.RunAnalysis(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result.Report.HeatmapView(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
