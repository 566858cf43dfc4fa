package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on 401/403 responses. Admin surfaces
	// treat it as "log in again".
	ErrUnauthorized = errors.New("not authorized")

	// ErrNoMoreQuestions is returned by NextQuestion when the server has no
	// question left for the session. Callers treat it as graceful
	// completion, not a failure.
	ErrNoMoreQuestions = errors.New("no more questions available")

	// ErrNotFound is returned for missing resources other than the
	// question pool.
	ErrNotFound = errors.New("resource not found")
)

// APIError is a structured error the backend reported inside a response
// envelope, or a bare non-2xx status when the body carried no message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.StatusCode)
}

// IsRetryable reports whether the failure is worth offering a retry for.
// Server errors and transport failures are; rejections are not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	// Transport-level failures (no status at all) are retryable.
	return err != nil &&
		!errors.Is(err, ErrUnauthorized) &&
		!errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrNoMoreQuestions)
}
