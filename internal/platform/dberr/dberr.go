// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// Postgres SQLSTATE codes the catalog reacts to.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	stringTooLong       = "22001"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action names the failing operation (e.g. "create_genre") and is kept in
// the wrapped cause for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations are client-visible conflicts
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case uniqueViolation:
			conflict := apperr.Conflict("A record with the same value already exists")
			conflict.Key = "error.duplicate"
			conflict.Cause = err
			return conflict
		case foreignKeyViolation:
			conflict := apperr.Conflict("The record is still referenced by other records")
			conflict.Key = "error.has_dependents"
			conflict.Cause = err
			return conflict
		case checkViolation:
			return rejected(err, pgError.ColumnName, "error.check_violation", "The values break a rule of the catalog")
		case stringTooLong:
			return rejected(err, pgError.ColumnName, "error.value_too_long", "A value is longer than allowed")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&actionError{action: action, err: err})
}

// rejected reports a row the database refused as a validation failure,
// so the form is shown again instead of an error page.
func rejected(err error, column, key, message string) error {
	invalid := apperr.ValidationError(message, apperr.FieldError{Field: column, Key: key, Message: message})
	invalid.Cause = err
	return invalid
}

// actionError tags a storage failure with the operation that produced it.
type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
