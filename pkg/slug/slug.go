// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug builds CSS class names from display labels.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks drops combining accents after NFD decomposition ("ả" → "a").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Class returns "<prefix>-<label>" with the label lowercased, stripped of
// accents and joined by single hyphens: Class("status", "On Loan") is
// "status-on-loan". An empty label yields the bare prefix.
func Class(prefix, label string) string {
	plain, _, err := transform.String(stripMarks, label)
	if err != nil {
		plain = label
	}

	var builder strings.Builder
	builder.WriteString(prefix)

	pendingHyphen := true
	for _, r := range strings.ToLower(plain) {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pendingHyphen = true
			continue
		}
		if pendingHyphen {
			builder.WriteByte('-')
			pendingHyphen = false
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
