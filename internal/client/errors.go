// ABOUTME: Normalized failure types returned by the API client
// ABOUTME: Distinguishes unauthorized, application, and transport failures

package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrUnauthorized matches any 401 response via errors.Is
var ErrUnauthorized = errors.New("unauthorized")

// Default failure messages when the server sends none
const (
	DefaultUnauthorizedMessage = "Unauthorized"
	DefaultFailureMessage      = "API request failed"
)

// APIError is a non-2xx response from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is reports 401 responses as ErrUnauthorized
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// newAPIError builds an APIError, preferring the body's message field
func newAPIError(status int, body []byte) *APIError {
	msg := gjson.GetBytes(body, "message").String()
	if msg == "" {
		if status == http.StatusUnauthorized {
			msg = DefaultUnauthorizedMessage
		} else {
			msg = DefaultFailureMessage
		}
	}
	return &APIError{Status: status, Message: msg}
}

// TransportError means no HTTP response was received
type TransportError struct {
	Method string
	URL    string
	Err    error
	msg    string
}

func (e *TransportError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.msg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a 401 failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// Message returns the user-facing message for err
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
