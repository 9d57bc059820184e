// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// Form synchronizers use it to decide whether a form may be submitted. A
// failed validation is a value, never a panic: callers render the returned
// details next to the offending inputs.
package validate

import (
	"strings"

	"github.com/taibuivan/blogadmin/internal/platform/apperr"
)

const (
	// MessageRequired is the failure text of every required rule.
	MessageRequired = "This field is required"
)

var (
	// ErrInvalidForm is returned when a submitted form body cannot be parsed.
	ErrInvalidForm = apperr.BadRequest("Invalid form payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every form check.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, MessageRequired)
	}
	return v
}

// Present fails if a non-textual value is missing.
func (v *Validator) Present(field string, present bool) *Validator {
	if !present {
		v.add(field, MessageRequired)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("date", err != nil, "Must be a valid date and time")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
