package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// envelope serializes the normalized result as a single JSON text block.
func envelope(payload map[string]any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// upstreamError is the single error branch shared by every handler.
// Rate limiting and HTTP failures become error-flagged text results so a
// multi-tool session survives them; anything else (timeouts, connection
// failures) propagates as a protocol fault.
func upstreamError(err error) (*mcp.CallToolResult, error) {
	var rl *urlhaus.RateLimitError
	if errors.As(err, &rl) {
		return mcp.NewToolResultError(rl.Error()), nil
	}
	var se *urlhaus.StatusError
	if errors.As(err, &se) {
		return mcp.NewToolResultError(se.Error()), nil
	}
	return nil, err
}

// truncate caps list at limit. Idempotent when the upstream already
// respected the limit.
func truncate(list []any, limit int) []any {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
