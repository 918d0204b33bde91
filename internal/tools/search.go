package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// ---------------------------------------------------------------------------
// URLsByTagTool
// ---------------------------------------------------------------------------

// URLsByTagTool returns URLs associated with a tag (e.g. "Mozi", "emotet").
type URLsByTagTool struct {
	client *urlhaus.Client
}

// NewURLsByTagTool creates a URLsByTagTool.
func NewURLsByTagTool(client *urlhaus.Client) *URLsByTagTool {
	return &URLsByTagTool{client: client}
}

func (t *URLsByTagTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolURLsByTag),
		mcp.WithDescription("Get malware URLs associated with a specific tag."),
		mcp.WithString("tag",
			mcp.Required(),
			mcp.Description("Tag to search for (e.g. Mozi, emotet)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of URLs to return (1-1000, default 100)"),
			mcp.DefaultNumber(defaultLimit),
			mcp.Min(1),
			mcp.Max(maxLimit),
		),
	)
}

func (t *URLsByTagTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	tag, err := requiredArg(args, "tag")
	if err != nil {
		return nil, err
	}
	limit := normalizeLimit(args["limit"])

	rec, err := t.client.Tag(ctx, tag, limit)
	if err != nil {
		return upstreamError(err)
	}

	urls := rec.List("urls")
	summary := fmt.Sprintf("Found %d URLs tagged %q", len(urls), tag)
	if !rec.OK() {
		summary = fmt.Sprintf("No URLs found for tag %q (query_status: %s)", tag, rec.QueryStatus())
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"tag":          tag,
		"urls_count":   len(urls),
		"urls":         truncate(urls, limit),
	})
}

// ---------------------------------------------------------------------------
// URLsBySignatureTool
// ---------------------------------------------------------------------------

// URLsBySignatureTool returns URLs associated with a malware signature.
type URLsBySignatureTool struct {
	client *urlhaus.Client
}

// NewURLsBySignatureTool creates a URLsBySignatureTool.
func NewURLsBySignatureTool(client *urlhaus.Client) *URLsBySignatureTool {
	return &URLsBySignatureTool{client: client}
}

func (t *URLsBySignatureTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolURLsBySignature),
		mcp.WithDescription("Get malware URLs associated with a specific malware signature (family)."),
		mcp.WithString("signature",
			mcp.Required(),
			mcp.Description("Malware signature to search for (e.g. TrickBot, Gozi)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of URLs to return (1-1000, default 100)"),
			mcp.DefaultNumber(defaultLimit),
			mcp.Min(1),
			mcp.Max(maxLimit),
		),
	)
}

func (t *URLsBySignatureTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	signature, err := requiredArg(args, "signature")
	if err != nil {
		return nil, err
	}
	limit := normalizeLimit(args["limit"])

	rec, err := t.client.Signature(ctx, signature, limit)
	if err != nil {
		return upstreamError(err)
	}

	urls := rec.List("urls")
	summary := fmt.Sprintf("Found %d URLs for signature %q", len(urls), signature)
	if !rec.OK() {
		summary = fmt.Sprintf("No URLs found for signature %q (query_status: %s)", signature, rec.QueryStatus())
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"signature":    signature,
		"urls_count":   len(urls),
		"urls":         truncate(urls, limit),
	})
}
