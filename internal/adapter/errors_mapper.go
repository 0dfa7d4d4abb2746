package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapAPIError turns a response into an error when it is not a success.
// The server answers business failures with HTTP 200 and an "error": true
// body, so the body is inspected even on OK responses.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() != http.StatusOK {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		// success bodies may be arrays; those are never failures
		return nil
	}

	flagged, ok := body["error"].(bool)
	if !ok || !flagged {
		return nil
	}

	fields := make(map[string]string)
	for key, value := range body {
		if key == "error" {
			continue
		}
		if message, ok := value.(string); ok {
			fields[key] = message
		}
	}

	return &APIError{Fields: fields}
}
