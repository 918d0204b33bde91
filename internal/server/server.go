// Package server assembles the MCP server from the tool registry and runs
// the stdio transport.
package server

import (
	"context"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/config"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/tools"
)

// New builds the MCP server and registers every tool from the registry,
// preserving registry order so tool listings stay stable.
func New(reg *tools.Registry) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"urlhaus-mcp",
		config.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, t := range reg.All() {
		s.AddTool(t.Handle(), t.Handler)
	}
	return s
}

// ListenStdio serves s over stdin/stdout until ctx is canceled.
func ListenStdio(ctx context.Context, s *mcpserver.MCPServer, log *logger.Entry) error {
	std := mcpserver.NewStdioServer(s)
	std.SetErrorLogger(logger.StdLogger(log))
	return std.Listen(ctx, os.Stdin, os.Stdout)
}
