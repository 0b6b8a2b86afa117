// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects rule failures
// before returning a single [apperr.AppError].
//
// # Architecture
//
// Validation runs first and short-circuits before any store or authorization
// work. Handlers own the client-facing message: the validator reports WHETHER
// input is malformed, the call site decides WHAT to say about it (several
// endpoints have fixed, externally observable messages).
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/fornello/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("invalid JSON payload")

// Validator collects rule failures via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	failures []string
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field + " is required")
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field + " must be a valid email address")
	}
	return v
}

// Positive fails if the numeric value is not strictly greater than zero.
func (v *Validator) Positive(field string, value float64) *Validator {
	if value <= 0 {
		v.add(field + " must be positive")
	}
	return v
}

// NotEmpty fails if the slice length is zero.
func (v *Validator) NotEmpty(field string, length int) *Validator {
	if length == 0 {
		v.add(field + " must not be empty")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom(storeID <= 0, "storeId must be a valid identifier")
func (v *Validator) Custom(failed bool, message string) *Validator {
	if failed {
		v.add(message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] joining every failure,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.failures) == 0 {
		return nil
	}
	return apperr.ValidationError(strings.Join(v.failures, "; "))
}

// ErrWithMessage returns a VALIDATION_ERROR with a fixed message if any rule
// failed, or nil. Used where an endpoint owns an exact client-facing text
// regardless of which rule tripped.
func (v *Validator) ErrWithMessage(message string) error {
	if len(v.failures) == 0 {
		return nil
	}
	return apperr.ValidationError(message)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// add appends a failure description to the internal slice.
func (v *Validator) add(message string) {
	v.failures = append(v.failures, message)
}
