package urlhaus

import "fmt"

// RateLimitError is returned when URLhaus answers HTTP 429.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "URLhaus rate limit exceeded, try again later"
}

// StatusError is returned for any other non-2xx response. QueryStatus carries
// the upstream's own query_status field when the body had one.
type StatusError struct {
	Code        int
	QueryStatus string
}

func (e *StatusError) Error() string {
	status := e.QueryStatus
	if status == "" {
		status = "request failed"
	}
	return fmt.Sprintf("URLhaus API returned HTTP %d (%s)", e.Code, status)
}
