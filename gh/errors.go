package gh

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error constants
var (
	ErrNotFound          = errors.New("not found")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrInvalidToken      = errors.New("invalid token")
	ErrFetchError        = errors.New("could not obtain repository data from the GitHub API")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	// Message is the upstream "message" field, when the body carried one.
	Message string

	kind error
}

func newStatusError(method, url string, resp *http.Response, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &StatusError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    payload.Message,
		kind:       classify(resp),
	}
}

func classify(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrInvalidToken
	case http.StatusTooManyRequests:
		return ErrRateLimitExceeded
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return ErrRateLimitExceeded
		}
	}
	return ErrFetchError
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s returned %s", e.Method, e.URL, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns the sentinel error matching the status code.
func (e *StatusError) Unwrap() error {
	return e.kind
}
