// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lookup centralizes "parse the path id, then find the row or fail".

Every detail, update and delete endpoint goes through the same two steps:

  - ParseID rejects a non-integer identifier before any storage access.
  - MustFind turns an absent row into a NotFound error naming the resource.
*/
package lookup

import (
	"context"
	"strconv"
	"strings"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// ParseID converts a raw path segment into a positive integer id.
//
// It returns [apperr.InvalidID] for anything else, including negative numbers and zero.
func ParseID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)

	id, err := strconv.Atoi(trimmed)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidID(raw)
	}
	return id, nil
}

// Finder loads one record by id. Implementations return an error carrying
// [apperr.CodeNotFound] when the row does not exist.
type Finder[T any] func(context context.Context, id int) (T, error)

// MustFind runs a finder and normalizes its not-found outcome.
//
// # Returns
//   - the record when found
//   - [apperr.NotFound] for the named resource when absent
//   - any other error unchanged
func MustFind[T any](context context.Context, resource string, find Finder[T], id int) (T, error) {
	record, err := find(context, id)
	if err == nil {
		return record, nil
	}

	var zero T
	if apperr.HasCode(err, apperr.CodeNotFound) {
		notFound := apperr.NotFound(resource)
		notFound.Cause = err
		return zero, notFound
	}
	return zero, err
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return apperr.HasCode(err, apperr.CodeNotFound)
}
