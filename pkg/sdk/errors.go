package taskmatch

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by APIError via errors.Is.
var (
	// ErrInvalidInput is returned for an empty task description or assignee list.
	ErrInvalidInput = errors.New("taskmatch: invalid input")
	// ErrUnauthorized is returned when the API key is missing or rejected.
	ErrUnauthorized = errors.New("taskmatch: unauthorized")
	// ErrUnavailable is returned when the service cannot serve the request.
	ErrUnavailable = errors.New("taskmatch: service unavailable")
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("taskmatch: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("taskmatch: http %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is maps service error codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Code == "invalid_input" || e.Code == "validation_failed"
	case ErrUnauthorized:
		return e.StatusCode == 401
	case ErrUnavailable:
		return e.StatusCode == 503
	}
	return false
}
