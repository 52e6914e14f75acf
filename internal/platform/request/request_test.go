// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

/*
TestForm decodes each supported body type and drops the override field.
*/
func TestForm(t *testing.T) {
	var payload bytes.Buffer
	form := multipart.NewWriter(&payload)
	require.NoError(t, form.WriteField("name", "Poetry"))
	require.NoError(t, form.WriteField(constants.MethodOverrideField, "PUT"))
	require.NoError(t, form.Close())

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"urlencoded", "application/x-www-form-urlencoded", "name=Poetry&_method=PUT"},
		{"multipart", form.FormDataContentType(), payload.String()},
		{"json", "application/json", `{"name":"Poetry"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/genres/store", strings.NewReader(tt.body))
			request.Header.Set(constants.HeaderContentType, tt.contentType)

			raw, err := requestutil.Form(request)
			require.NoError(t, err)
			assert.Equal(t, validate.Raw{"name": "Poetry"}, raw)
		})
	}
}

/*
TestForm_TooLarge rejects a body over the size cap.
*/
func TestForm_TooLarge(t *testing.T) {
	body := "name=" + strings.Repeat("a", constants.MaxFormBytes+1)
	request := httptest.NewRequest(http.MethodPost, "/genres/store", strings.NewReader(body))
	request.Header.Set(constants.HeaderContentType, "application/x-www-form-urlencoded")

	_, err := requestutil.Form(request)
	assert.ErrorIs(t, err, validate.ErrInvalidForm)
}

/*
TestParseBody_ParsesOnce lets a second caller reuse the parsed values.
*/
func TestParseBody_ParsesOnce(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/genres/store", strings.NewReader("name=Poetry"))
	request.Header.Set(constants.HeaderContentType, "application/x-www-form-urlencoded")

	require.NoError(t, requestutil.ParseBody(httptest.NewRecorder(), request))
	require.NoError(t, requestutil.ParseBody(httptest.NewRecorder(), request))
	assert.Equal(t, "Poetry", request.PostForm.Get("name"))
}
