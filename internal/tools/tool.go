// Package tools implements the URLhaus MCP tools: descriptor declaration,
// argument normalization, the upstream call, and result shaping.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is the contract every URLhaus tool satisfies: a static descriptor plus
// a handler the MCP server dispatches calls to.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
