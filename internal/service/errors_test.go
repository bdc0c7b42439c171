package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := newValidationError(&validators.FieldError{Field: "email", Rule: "contains", Message: "Invalid email format"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "email: Invalid email format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	other := newValidationError(validators.ErrUnsupportedType)
	assert.ErrorIs(t, other, ErrInvalidDataProvided)
	assert.ErrorIs(t, other, validators.ErrUnsupportedType)
	assert.False(t, errors.As(other, &validationErr))
}
