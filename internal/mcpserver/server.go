package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"arfigyelo-search/internal/dataset"
	"arfigyelo-search/internal/search/model"
	svc "arfigyelo-search/internal/search/service"
)

// Server exposes the price search over the Model Context Protocol, so an
// LLM agent can call it as a tool. Stdio transport; stdout carries the
// protocol, logs go to file.
type Server struct {
	provider *dataset.Provider
	logger   zerolog.Logger
	server   *server.MCPServer
}

func New(provider *dataset.Provider, logger zerolog.Logger) *Server {
	s := &Server{
		provider: provider,
		logger:   logger,
		server: server.NewMCPServer(
			"arfigyelo-search",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	searchTool := mcp.NewTool("search_products",
		mcp.WithDescription("Search the Árfigyelő price list for products similar to a free-text description"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text product description, e.g. \"Coca Cola 1.75 l\""),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of matches (default: 5)"),
		),
		mcp.WithNumber("min_score",
			mcp.Description("Minimum similarity score 0-100 to include a match (default: 45)"),
		),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Re-download the export before searching (default: false)"),
		),
	)
	s.server.AddTool(searchTool, s.handleSearch)

	columnsTool := mcp.NewTool("dataset_columns",
		mcp.WithDescription("Inspect column role detection for the cached price list"),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Re-download the export before inspecting (default: false)"),
		),
	)
	s.server.AddTool(columnsTool, s.handleColumns)

	refreshTool := mcp.NewTool("refresh_cache",
		mcp.WithDescription("Force re-download of the latest price list export"),
	)
	s.server.AddTool(refreshTool, s.handleRefresh)
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := request.GetInt("limit", model.DefaultLimit)
	minScore := request.GetFloat("min_score", model.DefaultMinScore)
	force := request.GetBool("force_refresh", false)

	table, err := s.provider.Load(force)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load dataset: %v", err)), nil
	}

	opts := model.Options{Limit: limit, MinScore: minScore}
	if minScore == 0 {
		opts.MinScore = -1
	}
	results, err := svc.Search(table, query, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Search failed: %v", err)), nil
	}
	s.logger.Info().Str("query", query).Int("matches", len(results)).Msg("mcp search")
	return jsonResult(results)
}

func (s *Server) handleColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	force := request.GetBool("force_refresh", false)

	table, err := s.provider.Load(force)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load dataset: %v", err)), nil
	}
	schema, err := svc.InspectSchema(table)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"rows":            len(table.Rows),
		"columns":         table.Columns,
		"detected_schema": schema,
	})
}

func (s *Server) handleRefresh(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.provider.Download(true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Refresh failed: %v", err)), nil
	}
	s.logger.Info().Str("path", path).Msg("mcp refresh")
	return mcp.NewToolResultText("Downloaded latest export to " + path), nil
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.server)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
