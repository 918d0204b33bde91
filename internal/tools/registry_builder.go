package tools

import "github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	order []string
	tools map[string]Tool
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{tools: make(map[string]Tool)}
}

// WithTool adds a tool and returns the builder, enabling chaining.
// Re-adding a name replaces the tool but keeps its original position.
func (b *RegistryBuilder) WithTool(tool Tool) *RegistryBuilder {
	name := tool.Handle().Name
	if _, exists := b.tools[name]; !exists {
		b.order = append(b.order, name)
	}
	b.tools[name] = tool

	return b
}

// Build produces an immutable Registry from the accumulated tools.
func (b *RegistryBuilder) Build() *Registry {
	order := make([]string, len(b.order))
	copy(order, b.order)
	tools := make(map[string]Tool, len(b.tools))
	for k, v := range b.tools {
		tools[k] = v
	}
	return &Registry{order: order, tools: tools}
}

// NewRegistry builds the full URLhaus tool set in its canonical order.
func NewRegistry(client *urlhaus.Client) *Registry {
	return NewRegistryBuilder().
		WithTool(NewRecentURLsTool(client)).
		WithTool(NewLookupURLTool(client)).
		WithTool(NewLookupHostTool(client)).
		WithTool(NewLookupPayloadTool(client)).
		WithTool(NewURLsByTagTool(client)).
		WithTool(NewURLsBySignatureTool(client)).
		WithTool(NewRecentPayloadsTool(client)).
		Build()
}
