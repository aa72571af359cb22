package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a structured error response from the degrees API.
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	RequestID  string          `json:"request_id,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("degrees: %d %s: %s (request_id=%s)", e.StatusCode, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("degrees: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Candidates decodes the people listed in an ambiguous_name error.
func (e *APIError) Candidates() ([]PersonSummary, error) {
	if e.Code != "ambiguous_name" {
		return nil, fmt.Errorf("error code %q carries no candidates", e.Code)
	}

	var out []PersonSummary
	if err := json.Unmarshal(e.Details, &out); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return out, nil
}

func asAPIError(err error) (*APIError, bool) {
	var e *APIError
	ok := errors.As(err, &e)
	return e, ok
}

// IsNotFound returns true if a person or movie does not exist.
func IsNotFound(err error) bool {
	e, ok := asAPIError(err)
	return ok && e.StatusCode == http.StatusNotFound && e.Code != "not_connected"
}

// IsNotConnected returns true if the two people share no chain of movies.
func IsNotConnected(err error) bool {
	e, ok := asAPIError(err)
	return ok && e.Code == "not_connected"
}

// IsAmbiguous returns true if a name matched more than one person.
func IsAmbiguous(err error) bool {
	e, ok := asAPIError(err)
	return ok && e.StatusCode == http.StatusConflict && e.Code == "ambiguous_name"
}

// IsRateLimited returns true if the error is a 429 rate limit.
func IsRateLimited(err error) bool {
	e, ok := asAPIError(err)
	return ok && e.StatusCode == http.StatusTooManyRequests
}

// parseAPIError attempts to decode a JSON error body; falls back to raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = string(body)
	}
	return apiErr
}
