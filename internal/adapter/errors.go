package adapter

import (
	"fmt"
	"sort"
	"strings"
)

// APIError is a business failure reported by the server in a 200 response:
// a body carrying "error": true plus one message per offending field.
type APIError struct {
	Fields map[string]string
}

func (e *APIError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(parts)
	return "api error: " + strings.Join(parts, "; ")
}
