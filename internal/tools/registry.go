package tools

// ToolName is the canonical name of a tool.
type ToolName string

const (
	ToolRecentURLs      ToolName = "get_recent_urls"
	ToolLookupURL       ToolName = "lookup_url"
	ToolLookupHost      ToolName = "lookup_host"
	ToolLookupPayload   ToolName = "lookup_payload"
	ToolURLsByTag       ToolName = "get_urls_by_tag"
	ToolURLsBySignature ToolName = "get_urls_by_signature"
	ToolRecentPayloads  ToolName = "get_payloads"
)

// Registry holds the tool set in declaration order. Listing must be stable
// across calls, so iteration always follows the order tools were added.
type Registry struct {
	order []string
	tools map[string]Tool
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name ToolName) Tool {
	return r.tools[string(name)]
}

// All returns the tools in declaration order.
func (r *Registry) All() []Tool {
	list := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}
