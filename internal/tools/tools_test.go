package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// upstream runs an httptest stand-in for URLhaus and counts requests.
type upstream struct {
	srv      *httptest.Server
	requests atomic.Int64
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *upstream {
	t.Helper()
	u := &upstream{}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) client() *urlhaus.Client {
	return urlhaus.NewClient(urlhaus.Options{BaseURL: u.srv.URL}, logger.Discard())
}

func callRequest(name ToolName, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = string(name)
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil {
		t.Fatal("expected a result, got nil")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func decodeEnvelope(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &env); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	return env
}

func TestRecentURLs_TruncatesButReportsUpstreamCount(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"ok","urls":[{"url":"u1"},{"url":"u2"},{"url":"u3"}]}`))
	})
	tool := NewRecentURLsTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolRecentURLs, map[string]any{"limit": float64(2)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)

	if env["query_status"] != "ok" {
		t.Errorf("expected query_status ok, got %v", env["query_status"])
	}
	urls, _ := env["urls"].([]any)
	if len(urls) != 2 {
		t.Errorf("expected 2 urls after truncation, got %d", len(urls))
	}
	if count, _ := env["urls_count"].(float64); count != 3 {
		t.Errorf("expected urls_count 3 (upstream length), got %v", env["urls_count"])
	}
}

func TestRecentPayloads_Envelope(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payloads/recent/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"query_status":"ok","payloads":[{"sha256_hash":"aa"}]}`))
	})
	tool := NewRecentPayloadsTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolRecentPayloads, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)
	if count, _ := env["payloads_count"].(float64); count != 1 {
		t.Errorf("expected payloads_count 1, got %v", env["payloads_count"])
	}
	summary, _ := env["summary"].(string)
	if !strings.Contains(summary, "1 recent payloads") {
		t.Errorf("unexpected summary %q", summary)
	}
}

func TestLookupURL_FoundSummary(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"ok","url":"http://evil.example/a.exe","threat":"malware_download"}`))
	})
	tool := NewLookupURLTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolLookupURL, map[string]any{"url": "http://evil.example/a.exe"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)
	summary, _ := env["summary"].(string)
	if !strings.Contains(summary, "found in URLhaus database") || strings.Contains(summary, "not found") {
		t.Errorf("expected found summary, got %q", summary)
	}
	info, _ := env["url_info"].(map[string]any)
	if info["threat"] != "malware_download" {
		t.Errorf("expected verbatim upstream payload, got %v", info)
	}
}

func TestLookupURL_NotFoundSummary(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"no_results"}`))
	})
	tool := NewLookupURLTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolLookupURL, map[string]any{"url": "http://clean.example/"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)
	summary, _ := env["summary"].(string)
	if !strings.Contains(summary, "not found in URLhaus database") {
		t.Errorf("expected not-found summary, got %q", summary)
	}
}

func TestLookupURL_MissingFieldIsFaultWithoutRequest(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"ok"}`))
	})
	tool := NewLookupURLTool(u.client())

	for _, args := range []map[string]any{nil, {"url": ""}, {"url": "   "}} {
		res, err := tool.Handler(context.Background(), callRequest(ToolLookupURL, args))
		if err == nil {
			t.Errorf("args %v: expected invalid-parameters fault", args)
		}
		if res != nil {
			t.Errorf("args %v: expected no result alongside fault", args)
		}
	}
	if got := u.requests.Load(); got != 0 {
		t.Errorf("expected no upstream requests for invalid input, got %d", got)
	}
}

func TestLookupHost_CountsNestedURLs(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"ok","host":"evil.example","urls":[{"url":"a"},{"url":"b"}]}`))
	})
	tool := NewLookupHostTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolLookupHost, map[string]any{"host": "evil.example"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)
	summary, _ := env["summary"].(string)
	if !strings.Contains(summary, "2 associated URLs") {
		t.Errorf("expected URL count in summary, got %q", summary)
	}
}

func TestLookupPayload_RejectsMalformedHash(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"ok"}`))
	})
	tool := NewLookupPayloadTool(u.client())

	_, err := tool.Handler(context.Background(), callRequest(ToolLookupPayload, map[string]any{"hash": "zzzz"}))
	if err == nil {
		t.Fatal("expected invalid-parameters fault for malformed hash")
	}
	if got := u.requests.Load(); got != 0 {
		t.Errorf("expected no upstream requests, got %d", got)
	}
}

func TestURLsByTag_LimitCoercedBeforeUpstream(t *testing.T) {
	var gotLimit string
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotLimit = r.PostFormValue("limit")
		w.Write([]byte(`{"query_status":"ok","urls":[]}`))
	})
	tool := NewURLsByTagTool(u.client())

	_, err := tool.Handler(context.Background(), callRequest(ToolURLsByTag, map[string]any{"tag": "Mozi", "limit": "abc"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != "100" {
		t.Errorf("expected unparseable limit to default to 100, got %q", gotLimit)
	}
}

func TestURLsBySignature_NotFoundSummary(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query_status":"no_results"}`))
	})
	tool := NewURLsBySignatureTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolURLsBySignature, map[string]any{"signature": "TrickBot"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, res)
	summary, _ := env["summary"].(string)
	if !strings.Contains(summary, `No URLs found for signature "TrickBot"`) {
		t.Errorf("unexpected summary %q", summary)
	}
	if !strings.Contains(summary, "no_results") {
		t.Errorf("expected query_status in summary, got %q", summary)
	}
}

func TestRateLimit_BecomesErrorResultNotFault(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	tool := NewRecentURLsTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolRecentURLs, nil))
	if err != nil {
		t.Fatalf("rate limiting must not raise a fault, got: %v", err)
	}
	if !res.IsError {
		t.Error("expected error-flagged result")
	}
	if text := resultText(t, res); !strings.Contains(text, "rate limit") {
		t.Errorf("expected rate-limit message, got %q", text)
	}
}

func TestUpstreamFailure_ErrorResultCarriesStatus(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"query_status":"no_results"}`))
	})
	tool := NewLookupHostTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolLookupHost, map[string]any{"host": "evil.example"}))
	if err != nil {
		t.Fatalf("upstream failure must not raise a fault, got: %v", err)
	}
	if !res.IsError {
		t.Error("expected error-flagged result")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "500") {
		t.Errorf("expected status code in message, got %q", text)
	}
	if !strings.Contains(text, "no_results") {
		t.Errorf("expected upstream status in message, got %q", text)
	}
}

func TestTransportFailure_PropagatesAsFault(t *testing.T) {
	u := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	u.srv.Close() // connection refused from here on
	tool := NewRecentURLsTool(u.client())

	res, err := tool.Handler(context.Background(), callRequest(ToolRecentURLs, nil))
	if err == nil {
		t.Fatal("expected transport failure to propagate as a fault")
	}
	if res != nil {
		t.Errorf("expected no result alongside fault, got %v", res)
	}
}
