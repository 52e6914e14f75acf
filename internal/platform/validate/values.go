// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/locallibrary/pkg/pointer"
	"github.com/taibuivan/locallibrary/pkg/query"
)

// Raw is an untyped submission: each entry holds either a string or a []string,
// the way a urlencoded body delivers a field chosen once or several times.
type Raw map[string]any

// FromValues converts a parsed form into [Raw]. A field submitted once becomes
// a scalar string, so a single-option multi-select arrives as a string too.
func FromValues(values url.Values) Raw {
	raw := make(Raw, len(values))
	for name, items := range values {
		switch len(items) {
		case 0:
			continue
		case 1:
			raw[name] = items[0]
		default:
			raw[name] = append([]string(nil), items...)
		}
	}
	return raw
}

// Values holds sanitized field values. Every field is a list; scalar fields
// have at most one element.
type Values map[string][]string

// Get returns the first value of a field, or the empty string.
func (values Values) Get(field string) string {
	if items := values[field]; len(items) > 0 {
		return items[0]
	}
	return ""
}

// List returns every value of a field.
func (values Values) List(field string) []string {
	return values[field]
}

// Set replaces a field with a single value.
func (values Values) Set(field, value string) {
	values[field] = []string{value}
}

// Has reports whether the field carries the given value. Forms use it to
// re-check the options a visitor had selected.
func (values Values) Has(field, value string) bool {
	for _, item := range values[field] {
		if item == value {
			return true
		}
	}
	return false
}

// Int returns the field parsed as an integer and whether it parsed.
func (values Values) Int(field string) (int, bool) {
	number, err := strconv.Atoi(values.Get(field))
	return number, err == nil
}

// Ints returns every value of a multi field parsed as integers, skipping the unparsable ones.
func (values Values) Ints(field string) []int {
	return query.IntSlice(values.List(field))
}

// Date returns the field parsed as a calendar date, or nil when empty or invalid.
func (values Values) Date(field string) *time.Time {
	parsed, ok := parseDate(values.Get(field), calendarLayouts)
	if !ok {
		return nil
	}
	return pointer.To(parsed)
}

// Text returns the stored form of a free-text field with its escaping undone,
// for callers that need the visitor's literal input.
func (values Values) Text(field string) string {
	return html.UnescapeString(values.Get(field))
}

// # Sanitizers

// Sanitizer rewrites a single submitted value before any rule sees it.
type Sanitizer func(string) string

// Text trims surrounding whitespace and escapes HTML so stored and
// redisplayed text cannot carry markup.
func Text(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

// Trim only trims surrounding whitespace. It is used for dates and ids.
func Trim(value string) string {
	return strings.TrimSpace(value)
}

// coerce normalizes one raw entry into a list. Scalar fields keep only the
// first element of a list; multi fields wrap a scalar into a one-element list.
// JSON numbers become their decimal text.
func coerce(entry any, multi bool) []string {
	var items []string
	switch value := entry.(type) {
	case nil:
		return nil
	case string:
		items = []string{value}
	case float64:
		items = []string{strconv.FormatFloat(value, 'f', -1, 64)}
	case []string:
		items = value
	case []any:
		for _, item := range value {
			switch element := item.(type) {
			case string:
				items = append(items, element)
			case float64:
				items = append(items, strconv.FormatFloat(element, 'f', -1, 64))
			}
		}
	default:
		return nil
	}

	if !multi && len(items) > 1 {
		return items[:1]
	}
	return items
}

// EncodeDate renders a date the way <input type="date"> expects it.
func EncodeDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(time.DateOnly)
}
