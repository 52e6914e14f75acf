// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate turns raw form submissions into typed, sanitized records.
//
// # Architecture
//
// Validation happens in two places. Handlers run a [Pipeline] over the
// submitted form: sanitize, coerce, evaluate every rule of every field, and
// either hand a typed candidate to the service or redisplay the form with all
// violations. Services use the chainable [Validator] for checks that need
// storage (referenced rows exist, names are unique) and report them in the
// same [apperr.FieldError] shape.
package validate

import (
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// ErrInvalidForm is returned when the request body cannot be parsed as a form.
var ErrInvalidForm = apperr.ValidationError("Invalid form payload")

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("author", !exists, "form.author_exists", "Author does not exist")
func (v *Validator) Custom(field string, failed bool, key, message string) *Validator {
	if failed {
		v.add(field, key, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// Services call it at the end of the chain.
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

// Errors returns the collected failures in the order they were found.
func (v *Validator) Errors() []apperr.FieldError {
	return v.errs
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, key, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Key: key, Message: message})
}

// FieldErrors extracts the per-field details of a validation error, or nil.
func FieldErrors(err error) []apperr.FieldError {
	ae := apperr.As(err)
	if ae == nil || ae.Code != apperr.CodeValidation {
		return nil
	}
	return ae.Details
}
