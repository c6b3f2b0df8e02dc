// Package mcptool exposes the dispatcher as MCP tools over stdio.
package mcptool

import (
	"context"
	"encoding/json"
	"strings"

	"MarketAsk/internal/model"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Answerer is the dispatcher as seen by MCP clients.
type Answerer interface {
	Handle(ctx context.Context, message string) model.Response
	Manual() string
}

// NewServer builds an MCP server with the ask_market and market_manual tools.
func NewServer(name, version string, a Answerer) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(true))
	s.AddTool(AskTool(), AskHandler(a))
	s.AddTool(ManualTool(), ManualHandler(a))
	return s
}

// Serve runs the MCP server on stdin/stdout until EOF.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func AskTool() mcp.Tool {
	return mcp.NewTool("ask_market",
		mcp.WithDescription("Ask a plain-English stock market question: prices, charts, comparisons, trend predictions, financial terms, top companies by sector, learning resources or an investment roadmap."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The question, e.g. 'price of AAPL' or 'compare MSFT and GOOGL'"),
		),
	)
}

func ManualTool() mcp.Tool {
	return mcp.NewTool("market_manual",
		mcp.WithDescription("List the supported question types with trigger keywords and examples."),
	)
}

// AskHandler answers one query. The first content item is the markdown
// answer; when a chart was built its JSON follows as a second item.
func AskHandler(a Answerer) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := r.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("query is required"), nil
		}

		resp := a.Handle(ctx, query)
		content := []mcp.Content{mcp.NewTextContent(resp.Text)}
		if resp.Chart != nil {
			out, err := json.Marshal(resp.Chart)
			if err != nil {
				return errorResult("failed to marshal chart"), nil
			}
			content = append(content, mcp.NewTextContent(string(out)))
		}
		return &mcp.CallToolResult{
			Content: content,
			IsError: strings.HasPrefix(resp.Text, "❌"),
		}, nil
	}
}

func ManualHandler(a Answerer) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(a.Manual()), nil
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}
