package urlhaus

// Record is a decoded URLhaus response body. The upstream schema is not
// contractually guaranteed field-by-field, so only the fields this server
// actually consumes get accessors; everything else passes through opaque.
type Record map[string]any

// QueryStatus returns the upstream query_status field, or "" when absent.
func (r Record) QueryStatus() string {
	s, _ := r["query_status"].(string)
	return s
}

// OK reports whether the upstream found matching data.
func (r Record) OK() bool {
	return r.QueryStatus() == "ok"
}

// List returns the array under key (e.g. "urls", "payloads"), or nil when the
// field is absent or not an array.
func (r Record) List(key string) []any {
	l, _ := r[key].([]any)
	return l
}
