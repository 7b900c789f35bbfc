package openai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned when the API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &APIError{StatusCode: status, Message: errResp.Error.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
