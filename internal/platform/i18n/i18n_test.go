// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/platform/i18n"
)

/*
TestTranslator_T verifies lookups, per-key English fallback and unknown keys.
*/
func TestTranslator_T(t *testing.T) {
	translator, err := i18n.New(language.English)
	require.NoError(t, err)

	assert.Equal(t, "Book not found", translator.T(language.English, "home.no_book"))
	assert.Equal(t, "Không tìm thấy sách", translator.T(language.Vietnamese, "home.no_book"))

	// Missing in Vietnamese, present in English
	assert.Equal(t, "Previous", translator.T(language.Vietnamese, "action.previous"))

	// Unknown keys render as themselves
	assert.Equal(t, "no.such.key", translator.T(language.English, "no.such.key"))

	assert.Equal(t, "Page 2 of 5", translator.T(language.English, "list.page", 2, 5))
}

/*
TestTranslator_Match covers negotiation from tags, raw strings and headers.
*/
func TestTranslator_Match(t *testing.T) {
	translator, err := i18n.New(language.English)
	require.NoError(t, err)

	assert.Equal(t, language.Vietnamese, translator.Match(language.MustParse("vi-VN")))
	assert.Equal(t, language.English, translator.Match(language.French))
	assert.Equal(t, language.English, translator.Match())

	tag, ok := translator.MatchString("vi")
	assert.True(t, ok)
	assert.Equal(t, language.Vietnamese, tag)

	_, ok = translator.MatchString("!!")
	assert.False(t, ok)

	tag, ok = translator.MatchAcceptLanguage("fr-CH, vi;q=0.9, en;q=0.8")
	assert.True(t, ok)
	assert.Equal(t, language.Vietnamese, tag)
}

/*
TestTranslator_Fallback honors a configured Vietnamese default.
*/
func TestTranslator_Fallback(t *testing.T) {
	translator, err := i18n.New(language.Vietnamese)
	require.NoError(t, err)

	assert.Equal(t, language.Vietnamese, translator.Fallback())
	assert.Equal(t, language.Vietnamese, translator.Match(language.Japanese))
}
