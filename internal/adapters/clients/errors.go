// Package clients provides the resilient HTTP client the interactive client uses
// to reach the tips API.
package clients

import (
	"errors"
	"fmt"
)

// Transport-level failures. The acl package translates them into domain errors.
var (
	// ErrCircuitOpen is returned without contacting the API while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is used up.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError is returned by GetJSON for non-2xx responses. Body holds at most
// maxErrorBody bytes of the response.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
