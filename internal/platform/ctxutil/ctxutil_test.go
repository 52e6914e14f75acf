// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	"github.com/taibuivan/locallibrary/internal/platform/session"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Session verifies that the visitor session travels with the request.
*/
func TestContext_Session(t *testing.T) {
	ctx := context.Background()
	current := session.New("sid-1", nil, 0)

	assert.Nil(t, ctxutil.GetSession(ctx))

	ctx = ctxutil.WithSession(ctx, current)
	retrieved := ctxutil.GetSession(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "sid-1", retrieved.ID)
}

/*
TestContext_Locale checks the English fallback and the stored tag.
*/
func TestContext_Locale(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, language.English, ctxutil.GetLocale(ctx))

	ctx = ctxutil.WithLocale(ctx, language.Vietnamese)
	assert.Equal(t, language.Vietnamese, ctxutil.GetLocale(ctx))
}
