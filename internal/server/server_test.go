package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/tools"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

type rpcResponse struct {
	Result *struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func handle(t *testing.T, raw string) rpcResponse {
	t.Helper()
	client := urlhaus.NewClient(urlhaus.Options{BaseURL: "http://127.0.0.1:1"}, logger.Discard())
	s := New(tools.NewRegistry(client))

	msg := s.HandleMessage(context.Background(), json.RawMessage(raw))
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var resp rpcResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestToolsList_ReturnsSevenTools(t *testing.T) {
	resp := handle(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if resp.Result == nil {
		t.Fatal("expected a result")
	}
	if len(resp.Result.Tools) != 7 {
		t.Fatalf("expected 7 tools, got %d", len(resp.Result.Tools))
	}
	seen := make(map[string]bool)
	for _, tool := range resp.Result.Tools {
		seen[tool.Name] = true
	}
	for _, name := range []string{
		"get_recent_urls", "lookup_url", "lookup_host", "lookup_payload",
		"get_urls_by_tag", "get_urls_by_signature", "get_payloads",
	} {
		if !seen[name] {
			t.Errorf("tool %q missing from listing", name)
		}
	}
}

func TestCallTool_UnknownNameIsProtocolError(t *testing.T) {
	resp := handle(t, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"nope","arguments":{}}}`)
	if resp.Error == nil {
		t.Fatal("expected a protocol error for unknown tool")
	}
	if !strings.Contains(resp.Error.Message, "nope") {
		t.Errorf("expected offending name in message, got %q", resp.Error.Message)
	}
}
