package tools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// hashPattern matches an MD5 or SHA-256 hex digest.
var hashPattern = regexp.MustCompile(`^(?:[A-Fa-f0-9]{32}|[A-Fa-f0-9]{64})$`)

// stringArg returns the trimmed string argument for key, or "".
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// requiredArg returns the trimmed string argument for key, or an error when
// it is absent, empty, or whitespace-only. The error propagates as a
// protocol-level fault, not a tool result.
func requiredArg(args map[string]any, key string) (string, error) {
	s := stringArg(args, key)
	if s == "" {
		return "", fmt.Errorf("invalid parameters: %q is required", key)
	}
	return s, nil
}

// hashArg returns the hash argument, validated as an MD5 or SHA-256 digest.
func hashArg(args map[string]any, key string) (string, error) {
	s, err := requiredArg(args, key)
	if err != nil {
		return "", err
	}
	if !hashPattern.MatchString(s) {
		return "", fmt.Errorf("invalid parameters: %q must be an MD5 or SHA-256 hex digest", key)
	}
	return s, nil
}

// normalizeLimit coerces a limit argument of any type into [1, maxLimit].
// Absent, unparseable, and non-positive values default to defaultLimit;
// values above maxLimit are capped, never rejected.
func normalizeLimit(v any) int {
	n := 0
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case int64:
		n = int(t)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			n = parsed
		}
	}
	if n <= 0 {
		n = defaultLimit
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n
}
