package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown identifier and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a token is missing, invalid or
	// expired, or its session no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionCreationFailed   = errors.New("session creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError reports rejected input. Message is safe to show to the
// client as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes every ValidationError match [ErrInvalidDataProvided].
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}

// newValidationError converts a validator failure into a [ValidationError].
func newValidationError(err error) error {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return &ValidationError{Field: fieldErr.Field, Message: fieldErr.Message}
	}

	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
