// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/session"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[string][]session.Flash
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string][]session.Flash{}}
}

func (store *memoryStore) Push(_ context.Context, sessionID string, flash session.Flash, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[sessionID] = append(store.entries[sessionID], flash)
	return nil
}

func (store *memoryStore) Pop(_ context.Context, sessionID string) ([]session.Flash, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	flashes := store.entries[sessionID]
	delete(store.entries, sessionID)
	return flashes, nil
}

// plainCodec prefixes IDs instead of signing them.
type plainCodec struct{}

func (plainCodec) Sign(id string) (string, error) { return "signed." + id, nil }

func (plainCodec) Verify(token string) (string, error) {
	if len(token) > 7 && token[:7] == "signed." {
		return token[7:], nil
	}
	return "", errors.New("bad token")
}

/*
TestSession_FlashesArePoppedOnce verifies one-shot delivery of notices.
*/
func TestSession_FlashesArePoppedOnce(t *testing.T) {
	ctx := context.Background()
	current := session.New("sid", newMemoryStore(), time.Minute)

	require.NoError(t, current.AddFlash(ctx, session.KindError, "home.no_book"))
	require.NoError(t, current.AddFlash(ctx, session.KindSuccess, "flash.genre_created"))

	flashes, err := current.Flashes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []session.Flash{
		{Kind: session.KindError, Key: "home.no_book"},
		{Kind: session.KindSuccess, Key: "flash.genre_created"},
	}, flashes)

	again, err := current.Flashes(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

/*
TestSession_NilSafe verifies that a missing session never breaks a handler.
*/
func TestSession_NilSafe(t *testing.T) {
	var current *session.Session
	assert.NoError(t, current.AddFlash(context.Background(), session.KindError, "home.no_book"))

	flashes, err := current.Flashes(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, flashes)
}

/*
TestManager_LoadAndIssue covers cookie restore, fresh sessions and tampered cookies.
*/
func TestManager_LoadAndIssue(t *testing.T) {
	manager := session.NewManager(plainCodec{}, newMemoryStore(), time.Hour, false)

	t.Run("fresh_session_sets_cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		current := manager.Load(request)
		assert.True(t, current.IsNew)
		assert.NotEmpty(t, current.ID)

		require.NoError(t, manager.Issue(recorder, current))
		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "signed."+current.ID, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("existing_cookie_is_restored", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "signed.abc"})
		recorder := httptest.NewRecorder()

		current := manager.Load(request)
		assert.False(t, current.IsNew)
		assert.Equal(t, "abc", current.ID)

		require.NoError(t, manager.Issue(recorder, current))
		assert.Empty(t, recorder.Result().Cookies())
	})

	t.Run("tampered_cookie_starts_over", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})

		current := manager.Load(request)
		assert.True(t, current.IsNew)
	})
}
