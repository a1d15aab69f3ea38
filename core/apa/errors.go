package apa

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("league api error")
	// ErrUnauthorized matches API errors caused by a rejected token.
	ErrUnauthorized = errors.New("league api unauthorized")
	// ErrNotAuthenticated is returned when a query runs before Authenticate.
	ErrNotAuthenticated = errors.New("league api: not authenticated")
)

// APIError describes a failed GraphQL operation.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
