// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n resolves message keys into localized text.

Every user-visible string in the catalog (form violations, flash notices,
error pages, page labels) is addressed by a dotted key such as
"form.first_name_valid" or "home.no_book". Keys are resolved per request in
the language negotiated by the locale middleware.

Architecture:

  - Catalog: a golang.org/x/text message catalog built once at startup.
  - Translator: immutable after construction, safe for concurrent use.
  - Fallback: an unknown key renders as the key itself.
*/
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages the catalog ships, preferred first.
var Supported = []language.Tag{language.English, language.Vietnamese}

// Translator looks up message keys for a language.
type Translator struct {
	fallback language.Tag
	matcher  language.Matcher
	printers map[language.Tag]*message.Printer
}

// New builds the translator from the bundled message tables.
func New(fallback language.Tag) (*Translator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	// Every language gets every English key, overridden by its own table
	for _, tag := range Supported {
		for key, text := range english {
			if translated, ok := messages[tag][key]; ok {
				text = translated
			}
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, err
			}
		}
	}

	translator := &Translator{
		matcher:  language.NewMatcher(Supported),
		printers: make(map[language.Tag]*message.Printer, len(Supported)),
	}
	for _, tag := range Supported {
		translator.printers[tag] = message.NewPrinter(tag, message.Catalog(builder))
	}
	translator.fallback = translator.Match(fallback)

	return translator, nil
}

// T renders a key in the given language. Arguments fill the message's verbs.
func (translator *Translator) T(tag language.Tag, key string, args ...any) string {
	printer, ok := translator.printers[tag]
	if !ok {
		printer = translator.printers[translator.Match(tag)]
	}
	return printer.Sprintf(key, args...)
}

// Match picks the closest supported language. Unsupported input yields the fallback.
func (translator *Translator) Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return translator.Fallback()
	}

	_, index, confidence := translator.matcher.Match(preferred...)
	if confidence == language.No {
		return translator.Fallback()
	}
	return Supported[index]
}

// MatchString parses a tag such as "vi" or "en-GB" and matches it.
// It reports false when the string is not a supported language.
func (translator *Translator) MatchString(raw string) (language.Tag, bool) {
	tag, err := language.Parse(raw)
	if err != nil {
		return translator.Fallback(), false
	}

	_, index, confidence := translator.matcher.Match(tag)
	if confidence == language.No {
		return translator.Fallback(), false
	}
	return Supported[index], true
}

// MatchAcceptLanguage negotiates from an Accept-Language header value.
func (translator *Translator) MatchAcceptLanguage(header string) (language.Tag, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.Fallback(), false
	}

	_, index, confidence := translator.matcher.Match(tags...)
	if confidence == language.No {
		return translator.Fallback(), false
	}
	return Supported[index], true
}

// Fallback is the language used when nothing else matches.
func (translator *Translator) Fallback() language.Tag {
	if translator.fallback == language.Und {
		return language.English
	}
	return translator.fallback
}
