// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Check is a pure rule predicate. It receives the field being validated and
// the whole sanitized submission so cross-field rules can read their partner.
type Check func(field string, values Values) bool

// Rule is a named predicate plus the message reported when it fails.
type Rule struct {
	Name    string
	Key     string
	Message string
	Check   Check
}

// WithKey returns a copy of the rule reporting a field-specific message key.
func (rule Rule) WithKey(key string) Rule {
	rule.Key = key
	return rule
}

// Date layouts accepted for calendar dates typed by hand or by a date picker.
var calendarLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Strict ISO-8601 layouts. Each must also be a real calendar date.
var isoLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDate(value string, layouts []string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return calendarDay(parsed), true
		}
	}
	return time.Time{}, false
}

// calendarDay keeps the date as written in the submitted offset. Dates are
// stored as DATE, so the time of day never takes part in a comparison.
func calendarDay(moment time.Time) time.Time {
	year, month, day := moment.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// # Presence

// NotEmpty fails when the field is empty. For multi fields it fails when no value was sent.
func NotEmpty() Rule {
	return Rule{
		Name:    "not_empty",
		Key:     "form.required",
		Message: "This field is required",
		Check: func(field string, values Values) bool {
			for _, item := range values.List(field) {
				if item != "" {
					return true
				}
			}
			return false
		},
	}
}

// RequiredWhen fails when the field is empty while another field holds the given value.
func RequiredWhen(other, expected string) Rule {
	return Rule{
		Name:    "required_when",
		Key:     "form.required",
		Message: fmt.Sprintf("This field is required when %s is %s", other, expected),
		Check: func(field string, values Values) bool {
			return values.Get(other) != expected || values.Get(field) != ""
		},
	}
}

// # Text

// Alphanumeric fails unless the value is made of ASCII letters and digits only.
// An empty value fails too.
func Alphanumeric() Rule {
	return Rule{
		Name:    "alphanumeric",
		Key:     "form.alphanumeric",
		Message: "Only letters and digits are allowed",
		Check: func(field string, values Values) bool {
			value := values.Get(field)
			if value == "" {
				return false
			}
			for _, char := range value {
				isLetter := (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
				isDigit := char >= '0' && char <= '9'
				if !isLetter && !isDigit {
					return false
				}
			}
			return true
		},
	}
}

// MaxLength fails if the Unicode character count exceeds max.
func MaxLength(max int) Rule {
	return Rule{
		Name:    "max_length",
		Key:     "form.max_length",
		Message: fmt.Sprintf("Maximum %d characters", max),
		Check: func(field string, values Values) bool {
			return utf8.RuneCountInString(values.Get(field)) <= max
		},
	}
}

// MinLength fails if the Unicode character count is below min.
func MinLength(min int) Rule {
	return Rule{
		Name:    "min_length",
		Key:     "form.min_length",
		Message: fmt.Sprintf("Minimum %d characters", min),
		Check: func(field string, values Values) bool {
			return utf8.RuneCountInString(values.Get(field)) >= min
		},
	}
}

// OneOf fails unless the value is in the allowed set. An empty value passes.
func OneOf(allowed ...string) Rule {
	return Rule{
		Name:    "one_of",
		Key:     "form.one_of",
		Message: fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")),
		Check: func(field string, values Values) bool {
			value := values.Get(field)
			if value == "" {
				return true
			}
			for _, candidate := range allowed {
				if value == candidate {
					return true
				}
			}
			return false
		},
	}
}

// # Numbers

// Integer fails when a non-empty value is not a base-10 integer.
func Integer() Rule {
	return Rule{
		Name:    "integer",
		Key:     "form.integer",
		Message: "Must be an integer identifier",
		Check: func(field string, values Values) bool {
			value := values.Get(field)
			if value == "" {
				return true
			}
			_, err := strconv.Atoi(value)
			return err == nil
		},
	}
}

// IntList fails unless the field is a non-empty list whose every element is an integer.
func IntList() Rule {
	return Rule{
		Name:    "int_list",
		Key:     "form.int_list",
		Message: "Select at least one entry",
		Check: func(field string, values Values) bool {
			items := values.List(field)
			if len(items) == 0 {
				return false
			}
			for _, item := range items {
				if _, err := strconv.Atoi(item); err != nil {
					return false
				}
			}
			return true
		},
	}
}

// # Dates

// OptionalDate fails only when a non-empty value is not a valid calendar date.
func OptionalDate() Rule {
	return Rule{
		Name:    "optional_date",
		Key:     "form.date",
		Message: "Must be a valid date",
		Check: func(field string, values Values) bool {
			value := values.Get(field)
			if value == "" {
				return true
			}
			_, ok := parseDate(value, calendarLayouts)
			return ok
		},
	}
}

// OptionalISO8601 fails only when a non-empty value is not a strict ISO-8601 date.
func OptionalISO8601() Rule {
	return Rule{
		Name:    "optional_iso8601",
		Key:     "form.iso8601",
		Message: "Must be an ISO-8601 date (YYYY-MM-DD)",
		Check: func(field string, values Values) bool {
			value := values.Get(field)
			if value == "" {
				return true
			}
			_, ok := parseDate(value, isoLayouts)
			return ok
		},
	}
}

// After fails when both dates are present and the field is not strictly later
// than the other field. It passes when either side is absent.
func After(other string) Rule {
	return Rule{
		Name:    "after",
		Key:     "form.date_after",
		Message: fmt.Sprintf("Must be later than %s", other),
		Check: func(field string, values Values) bool {
			later, earlier := values.Get(field), values.Get(other)
			if later == "" || earlier == "" {
				return true
			}

			laterDate, okLater := parseDate(later, calendarLayouts)
			earlierDate, okEarlier := parseDate(earlier, calendarLayouts)
			if !okLater || !okEarlier {
				return false
			}
			return laterDate.After(earlierDate)
		},
	}
}
