// Package urlhaus is a thin client for the abuse.ch URLhaus REST API.
// The API is unauthenticated; every call is a single GET or form-encoded POST.
package urlhaus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
)

// DefaultBaseURL is the production URLhaus API endpoint.
const DefaultBaseURL = "https://urlhaus-api.abuse.ch/v1"

// Client issues requests against the URLhaus API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *logger.Entry
}

// Options configures a Client; zero values pick the production defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a Client.
func NewClient(opts Options, log *logger.Entry) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "urlhaus-mcp"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// RecentURLs fetches the most recent URLs added to URLhaus.
// GET /urls/recent/?limit=N
func (c *Client) RecentURLs(ctx context.Context, limit int) (Record, error) {
	return c.get(ctx, "/urls/recent/", limit)
}

// RecentPayloads fetches the most recent payloads seen by URLhaus.
// GET /payloads/recent/?limit=N
func (c *Client) RecentPayloads(ctx context.Context, limit int) (Record, error) {
	return c.get(ctx, "/payloads/recent/", limit)
}

// URL looks up a single URL.
// POST /url/ with form field url.
func (c *Client) URL(ctx context.Context, rawURL string) (Record, error) {
	return c.postForm(ctx, "/url/", url.Values{"url": {rawURL}})
}

// Host looks up a host (domain, IPv4 or IPv6); the record embeds the URLs
// observed on that host.
// POST /host/ with form field host.
func (c *Client) Host(ctx context.Context, host string) (Record, error) {
	return c.postForm(ctx, "/host/", url.Values{"host": {host}})
}

// Payload looks up a payload by MD5 or SHA-256 hash.
// POST /payload/ with form field hash.
func (c *Client) Payload(ctx context.Context, hash string) (Record, error) {
	return c.postForm(ctx, "/payload/", url.Values{"hash": {hash}})
}

// Tag returns URLs associated with a tag.
// POST /tag/ with form fields tag and limit.
func (c *Client) Tag(ctx context.Context, tag string, limit int) (Record, error) {
	return c.postForm(ctx, "/tag/", url.Values{
		"tag":   {tag},
		"limit": {strconv.Itoa(limit)},
	})
}

// Signature returns URLs associated with a malware signature.
// POST /signature/ with form fields signature and limit.
func (c *Client) Signature(ctx context.Context, signature string, limit int) (Record, error) {
	return c.postForm(ctx, "/signature/", url.Values{
		"signature": {signature},
		"limit":     {strconv.Itoa(limit)},
	})
}

func (c *Client) get(ctx context.Context, path string, limit int) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// do runs the request and applies the status-code mapping shared by every
// endpoint: 429 → RateLimitError, other non-2xx → StatusError, 2xx → Record.
func (c *Client) do(req *http.Request) (Record, error) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", req.URL.String()).Debug("urlhaus request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("urlhaus request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var rec Record
		if err := json.Unmarshal(body, &rec); err == nil {
			statusErr.QueryStatus = rec.QueryStatus()
		}
		return nil, statusErr
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return rec, nil
}
