// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the body
decoding patterns, so handlers receive an untyped submission or a typed ID and
never touch the raw body.
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

/*
Form reads the submission of a create or update request.

Urlencoded and multipart bodies go through [ParseBody]. JSON bodies are
accepted too, so scripted clients can post the same fields.

Parameters:
  - request: *http.Request

Returns:
  - validate.Raw: The untyped field map
  - error: validate.ErrInvalidForm if the body cannot be parsed or is too large
*/
func Form(request *http.Request) (validate.Raw, error) {
	if mediaType(request) == "application/json" {
		request.Body = http.MaxBytesReader(nil, request.Body, constants.MaxFormBytes)

		raw := validate.Raw{}
		if err := DecodeJSON(request, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	if err := ParseBody(nil, request); err != nil {
		return nil, err
	}

	// Override fields are routing metadata, not part of the submission
	values := request.PostForm
	values.Del(constants.MethodOverrideField)

	return validate.FromValues(values), nil
}

/*
ParseBody caps a form body at constants.MaxFormBytes and parses it into
request.PostForm, using the multipart parser for multipart bodies.

A body that was already parsed is not read again, so middleware reading the
form first and the handler reading it later see the same values under the
same limit.

Returns:
  - error: validate.ErrInvalidForm if the body cannot be parsed or is too large
*/
func ParseBody(writer http.ResponseWriter, request *http.Request) error {
	if request.PostForm != nil {
		return nil
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxFormBytes)

	var err error
	if mediaType(request) == "multipart/form-data" {
		err = request.ParseMultipartForm(constants.MaxFormBytes)
	} else {
		err = request.ParseForm()
	}
	if err != nil {
		return validate.ErrInvalidForm
	}
	return nil
}

func mediaType(request *http.Request) string {
	parsed, _, _ := mime.ParseMediaType(request.Header.Get(constants.HeaderContentType))
	return parsed
}

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination value)

Returns:
  - error: validate.ErrInvalidForm if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidForm
	}
	return nil
}

/*
ID parses the "id" URL parameter as a positive integer.

Returns:
  - int: The record ID
  - error: apperr.InvalidID when the segment is not a positive integer
*/
func ID(request *http.Request) (int, error) {
	return lookup.ParseID(chi.URLParam(request, "id"))
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(request, name))
}
