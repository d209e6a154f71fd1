package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by any 401 response
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is matched by any 404 response
	ErrNotFound = errors.New("not found")

	// ErrNoBaseURL is returned when the client has no API address configured
	ErrNoBaseURL = errors.New("api url not configured")
)

// APIError is a non-2xx response from the CRM backend
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Is lets callers match status classes with errors.Is
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
