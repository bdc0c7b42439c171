// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request models
// accepted by the services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: the first failed rule of a value, carrying the offending
//     field and a message that is safe to show to an end user.
//
// Rules are declared as `validate` struct tags on the models and enforced by
// go-playground/validator.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named struct fields.
	Validate(context.Context, any, ...string) error
}
