package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// ---------------------------------------------------------------------------
// LookupURLTool
// ---------------------------------------------------------------------------

// LookupURLTool looks up a single URL in the URLhaus database.
type LookupURLTool struct {
	client *urlhaus.Client
}

// NewLookupURLTool creates a LookupURLTool.
func NewLookupURLTool(client *urlhaus.Client) *LookupURLTool {
	return &LookupURLTool{client: client}
}

func (t *LookupURLTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolLookupURL),
		mcp.WithDescription("Look up a URL in the URLhaus database."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL to look up"),
		),
	)
}

func (t *LookupURLTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := requiredArg(request.GetArguments(), "url")
	if err != nil {
		return nil, err
	}

	rec, err := t.client.URL(ctx, rawURL)
	if err != nil {
		return upstreamError(err)
	}

	summary := fmt.Sprintf("URL %s found in URLhaus database", rawURL)
	if !rec.OK() {
		summary = fmt.Sprintf("URL %s not found in URLhaus database", rawURL)
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"url_info":     rec,
	})
}

// ---------------------------------------------------------------------------
// LookupHostTool
// ---------------------------------------------------------------------------

// LookupHostTool looks up a host (domain, IPv4 or IPv6). The returned record
// embeds the URLs observed on that host.
type LookupHostTool struct {
	client *urlhaus.Client
}

// NewLookupHostTool creates a LookupHostTool.
func NewLookupHostTool(client *urlhaus.Client) *LookupHostTool {
	return &LookupHostTool{client: client}
}

func (t *LookupHostTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolLookupHost),
		mcp.WithDescription("Look up a host (domain or IP address) in the URLhaus database."),
		mcp.WithString("host",
			mcp.Required(),
			mcp.Description("The host to look up (domain name, IPv4 or IPv6 address)"),
		),
	)
}

func (t *LookupHostTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	host, err := requiredArg(request.GetArguments(), "host")
	if err != nil {
		return nil, err
	}

	rec, err := t.client.Host(ctx, host)
	if err != nil {
		return upstreamError(err)
	}

	summary := fmt.Sprintf("Host %s found in URLhaus database with %d associated URLs",
		host, len(rec.List("urls")))
	if !rec.OK() {
		summary = fmt.Sprintf("Host %s not found in URLhaus database", host)
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"host_info":    rec,
	})
}

// ---------------------------------------------------------------------------
// LookupPayloadTool
// ---------------------------------------------------------------------------

// LookupPayloadTool looks up a payload by MD5 or SHA-256 hash.
type LookupPayloadTool struct {
	client *urlhaus.Client
}

// NewLookupPayloadTool creates a LookupPayloadTool.
func NewLookupPayloadTool(client *urlhaus.Client) *LookupPayloadTool {
	return &LookupPayloadTool{client: client}
}

func (t *LookupPayloadTool) Handle() mcp.Tool {
	return mcp.NewTool(string(ToolLookupPayload),
		mcp.WithDescription("Look up a malware payload by its MD5 or SHA-256 hash."),
		mcp.WithString("hash",
			mcp.Required(),
			mcp.Description("MD5 or SHA-256 hash of the payload"),
			mcp.Pattern(`^(?:[A-Fa-f0-9]{32}|[A-Fa-f0-9]{64})$`),
		),
	)
}

func (t *LookupPayloadTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hash, err := hashArg(request.GetArguments(), "hash")
	if err != nil {
		return nil, err
	}

	rec, err := t.client.Payload(ctx, hash)
	if err != nil {
		return upstreamError(err)
	}

	summary := fmt.Sprintf("Payload %s found in URLhaus database", hash)
	if !rec.OK() {
		summary = fmt.Sprintf("Payload %s not found in URLhaus database", hash)
	}

	return envelope(map[string]any{
		"query_status": rec.QueryStatus(),
		"summary":      summary,
		"payload_info": rec,
	})
}
