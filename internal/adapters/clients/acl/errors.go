package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/jsamuelsen/ecotips/internal/adapters/clients"
	"github.com/jsamuelsen/ecotips/internal/domain"
)

// errorEnvelope is the API's error body: {"error":{"code","message","details"},"traceId"}.
type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// parseErrorEnvelope returns nil when body is empty or not an error envelope.
func parseErrorEnvelope(body []byte) *errorEnvelope {
	if len(body) == 0 {
		return nil
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}

	if env.Error.Code == "" && env.Error.Message == "" {
		return nil
	}

	return &env
}

// MapError translates a clients.Client failure into a domain error.
// entityID names the tip for not found errors and may be empty.
func MapError(err error, service, operation, entityID string) error {
	if err == nil {
		return nil
	}

	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		return mapStatus(statusErr.StatusCode, parseErrorEnvelope(statusErr.Body), service, operation, entityID)
	}

	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "max retries exceeded during "+operation)

	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatus(status int, env *errorEnvelope, service, operation, entityID string) error {
	message := fmt.Sprintf("%s failed with status %d", operation, status)
	if env != nil && env.Error.Message != "" {
		message = env.Error.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError("tip", entityID)

	case status == http.StatusConflict:
		return domain.NewConflictError("tip", message)

	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if env != nil && len(env.Error.Details) > 0 {
			field := firstKey(env.Error.Details)
			return domain.NewValidationError(field, env.Error.Details[field])
		}

		return domain.NewValidationError("", message)

	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")

	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(service, message)

	default:
		return domain.NewValidationError("", message)
	}
}

// firstKey returns the smallest key so the reported field is stable.
func firstKey(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys[0]
}
