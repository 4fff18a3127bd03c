package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed is matched (via [errors.Is]) by every payload that
	// violates its schema. The transport layer answers it with 400.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMalformedPayload is returned when the payload is not valid JSON.
	ErrMalformedPayload = errors.New("malformed JSON payload")
)

// ValidationError lists the individual schema violations of a payload.
type ValidationError struct {
	// Details holds one "$.path: message" entry per violation.
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
