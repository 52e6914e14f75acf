// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/pkg/uuidv7"
)

// TokenCodec signs and verifies the opaque cookie value holding the session ID.
type TokenCodec interface {
	Sign(sessionID string) (string, error)
	Verify(token string) (string, error)
}

// Manager restores sessions from the request cookie and issues new ones.
type Manager struct {
	tokens TokenCodec
	store  Store
	ttl    time.Duration
	secure bool
}

// NewManager wires the cookie codec and flash store.
func NewManager(tokens TokenCodec, store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{tokens: tokens, store: store, ttl: ttl, secure: secure}
}

// Load returns the session named by the request cookie. A missing, expired or
// tampered cookie starts a fresh session instead of failing the request.
func (manager *Manager) Load(request *http.Request) *Session {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		if id, err := manager.tokens.Verify(cookie.Value); err == nil && id != "" {
			return New(id, manager.store, manager.ttl)
		}
	}

	current := New(uuidv7.New(), manager.store, manager.ttl)
	current.IsNew = true
	return current
}

// Issue writes the cookie for a newly started session. Existing sessions are left untouched.
func (manager *Manager) Issue(writer http.ResponseWriter, current *Session) error {
	if current == nil || !current.IsNew {
		return nil
	}

	token, err := manager.tokens.Sign(current.ID)
	if err != nil {
		return err
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(manager.ttl.Seconds()),
		HttpOnly: true,
		Secure:   manager.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
