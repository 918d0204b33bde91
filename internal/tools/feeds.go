package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// ---------------------------------------------------------------------------
// RecentURLsTool
// ---------------------------------------------------------------------------

// RecentURLsTool serves the recent malware-URL feed.
type RecentURLsTool struct {
	client *urlhaus.Client
}

// NewRecentURLsTool creates a RecentURLsTool.
func NewRecentURLsTool(client *urlhaus.Client) *RecentURLsTool {
	return &RecentURLsTool{client: client}
}

func (t *RecentURLsTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolRecentURLs),
		mcp.WithDescription("Get the most recent malware URLs added to URLhaus."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of URLs to return (1-1000, default 100)"),
			mcp.DefaultNumber(defaultLimit),
			mcp.Min(1),
			mcp.Max(maxLimit),
		),
	)
}

func (t *RecentURLsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := normalizeLimit(request.GetArguments()["limit"])

	rec, err := t.client.RecentURLs(ctx, limit)
	if err != nil {
		return upstreamError(err)
	}

	urls := rec.List("urls")
	summary := fmt.Sprintf("Retrieved %d recent malware URLs from URLhaus", len(urls))
	if !rec.OK() {
		summary = fmt.Sprintf("No recent URLs available (query_status: %s)", rec.QueryStatus())
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"urls_count":   len(urls),
		"urls":         truncate(urls, limit),
	})
}

// ---------------------------------------------------------------------------
// RecentPayloadsTool
// ---------------------------------------------------------------------------

// RecentPayloadsTool serves the recent payload feed.
type RecentPayloadsTool struct {
	client *urlhaus.Client
}

// NewRecentPayloadsTool creates a RecentPayloadsTool.
func NewRecentPayloadsTool(client *urlhaus.Client) *RecentPayloadsTool {
	return &RecentPayloadsTool{client: client}
}

func (t *RecentPayloadsTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolRecentPayloads),
		mcp.WithDescription("Get the most recent malware payloads (samples) seen by URLhaus."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of payloads to return (1-1000, default 100)"),
			mcp.DefaultNumber(defaultLimit),
			mcp.Min(1),
			mcp.Max(maxLimit),
		),
	)
}

func (t *RecentPayloadsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := normalizeLimit(request.GetArguments()["limit"])

	rec, err := t.client.RecentPayloads(ctx, limit)
	if err != nil {
		return upstreamError(err)
	}

	payloads := rec.List("payloads")
	summary := fmt.Sprintf("Retrieved %d recent payloads from URLhaus", len(payloads))
	if !rec.OK() {
		summary = fmt.Sprintf("No recent payloads available (query_status: %s)", rec.QueryStatus())
	}

	return envelope(map[string]any{
		"query_status":   rec.QueryStatus(),
		"summary":        summary,
		"payloads_count": len(payloads),
		"payloads":       truncate(payloads, limit),
	})
}
