package validators

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned for values that are not structs or
// pointers to structs.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldError describes the first rule a value failed.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Rule is the failed validation tag, e.g. "gt" or "month".
	Rule string
	// Message is presentable to end users.
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
