// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RequestValidator validates request models by their `validate` tags.
// It is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

const (
	// maxPasswordBytes is the longest input bcrypt hashes.
	maxPasswordBytes = 72
	// amountScale is the scale of the NUMERIC(14,2) amount columns.
	amountScale = 2
)

// maxAmount is the first value the amount columns cannot hold.
var maxAmount = decimal.New(1, 12)

// NewRequestValidator constructs a RequestValidator with the custom types and
// rules the models rely on:
//   - decimal.Decimal is compared as a number, so "gt=0" works on amounts;
//   - models.Date is checked as time.Time, so "required" rejects a zero date;
//   - "month" accepts an English month name in any letter case;
//   - "bcryptlen" limits a password to 72 bytes;
//   - "cents" and "maxamount" keep amounts within two decimal places and
//     below 10^12.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseMonth(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	_ = v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
		d, ok := decimalField(fl)
		return ok && d.Equal(d.Truncate(amountScale))
	})
	_ = v.RegisterValidation("maxamount", func(fl validator.FieldLevel) bool {
		d, ok := decimalField(fl)
		return ok && d.Abs().LessThan(maxAmount)
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its `validate` tags. When fields are given only
// those struct fields (Go names, e.g. "Amount") are checked.
//
// The returned error is a *FieldError for the first failed rule,
// ErrUnsupportedType for non-struct values, or nil.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return toFieldError(validationErrors[0])
	}

	return err
}

// decimalField returns the decimal behind the current field. Rules only see
// the float64 produced by the custom type func, so it is read from the parent.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}

	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() || !field.CanInterface() {
		return decimal.Decimal{}, false
	}

	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}

func toFieldError(fe validator.FieldError) *FieldError {
	field := strings.ToLower(fe.Field())
	return &FieldError{
		Field:   field,
		Rule:    fe.Tag(),
		Message: message(field, fe),
	}
}

// message renders user-facing text for a failed rule. The email and password
// texts are shown verbatim by the registration form.
func message(field string, fe validator.FieldError) string {
	switch field {
	case "email":
		return "Invalid email format"
	case "password":
		if fe.Tag() == "bcryptlen" {
			return "Password must be at most 72 bytes long"
		}
		return "Password must be at least 6 characters long"
	case "username":
		switch fe.Tag() {
		case "max":
			return "Username is too long"
		case "excludes":
			return "Username must not contain @"
		}
		return "Username is required"
	case "amount":
		switch fe.Tag() {
		case "cents":
			return "Amount must have at most 2 decimal places"
		case "maxamount":
			return "Amount is too large"
		}
		return "Amount must be greater than 0"
	case "month":
		if _, isMonth := fe.Value().(time.Month); isMonth {
			return "Month must be between 1 and 12"
		}
		return "Invalid month"
	case "year":
		return "Year must be between 1900 and 9999"
	case "category_id":
		return "Category is required"
	case "date":
		return "Date is required"
	case "name":
		if fe.Tag() == "max" {
			return "Category name is too long"
		}
		return "Category name is required"
	case "description":
		return "Description is too long"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
