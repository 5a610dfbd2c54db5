package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the accounting backend. Detail carries
// the backend's human-readable message and is shown verbatim to end users.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("accounting backend: %s (status %d)", e.Detail, e.Status)
}

// IsNotFound reports whether the backend answered 404.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// errorPayload is the backend's error body shape.
type errorPayload struct {
	Detail string `json:"detail"`
}

// decodeError builds an *Error from a failed response body, falling back to
// the caller-supplied message when the body has no usable detail.
func decodeError(status int, body []byte, fallback string) *Error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &Error{Status: status, Detail: payload.Detail}
	}
	return &Error{Status: status, Detail: fallback}
}
