// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// Field declares how one form field is sanitized, coerced and checked.
type Field struct {
	Name     string
	Multi    bool
	Sanitize Sanitizer
	Rules    []Rule
}

// Schema is the ordered rule table of a form. Violations are reported in schema order.
type Schema []Field

// Result is the outcome of running a [Pipeline]. Values always holds the
// sanitized submission so the form can be redisplayed pre-filled.
type Result[T any] struct {
	Candidate  T
	Values     Values
	Violations []apperr.FieldError
}

// OK reports whether the submission passed every rule.
func (result *Result[T]) OK() bool {
	return len(result.Violations) == 0
}

// Err returns the violations as a VALIDATION_ERROR, or nil.
func (result *Result[T]) Err() error {
	if result.OK() {
		return nil
	}
	return apperr.ValidationError("Validation failed", result.Violations...)
}

// Pipeline converts a [Raw] submission into a typed candidate.
//
// # Stages
//
//  1. Sanitize every value of every declared field.
//  2. Coerce multi fields to lists and scalar fields to one value.
//  3. Run every rule of every field. Nothing short-circuits.
//  4. Build the candidate only when no rule failed.
//
// Fields absent from the schema are dropped.
type Pipeline[T any] struct {
	Schema Schema
	Build  func(Values) T
}

// Run executes the pipeline against a raw submission.
func (pipeline Pipeline[T]) Run(raw Raw) *Result[T] {
	values := Sanitize(pipeline.Schema, raw)

	validator := &Validator{}
	for _, field := range pipeline.Schema {
		for _, rule := range field.Rules {
			validator.Custom(field.Name, !rule.Check(field.Name, values), rule.Key, rule.Message)
		}
	}

	result := &Result[T]{Values: values, Violations: validator.Errors()}
	if result.OK() && pipeline.Build != nil {
		result.Candidate = pipeline.Build(values)
	}
	return result
}

// Sanitize applies the sanitize and coerce stages of a schema to a raw
// submission. Every declared field is present in the output, empty or not.
func Sanitize(schema Schema, raw Raw) Values {
	values := make(Values, len(schema))
	for _, field := range schema {
		items := coerce(raw[field.Name], field.Multi)

		sanitize := field.Sanitize
		if sanitize == nil {
			sanitize = Text
		}

		cleaned := make([]string, 0, len(items))
		for _, item := range items {
			cleaned = append(cleaned, sanitize(item))
		}
		values[field.Name] = cleaned
	}
	return values
}
