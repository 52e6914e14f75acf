// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session carries per-visitor state across redirects.

The only state the catalog keeps between requests is the flash queue: short
localized notices ("this book no longer exists", "genre created") written
before a redirect and shown exactly once on the next rendered page.

Architecture:

  - Session: the request-scoped handle threaded through [context.Context].
  - Store: where flash entries live between requests (Redis in production).
  - Manager: issues and verifies the signed session cookie.
*/
package session

import (
	"context"
	"time"
)

// Flash kinds rendered by the layout.
const (
	KindError   = "error"
	KindSuccess = "success"
)

// Flash is a single one-shot notice. Key is an i18n message key.
type Flash struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
}

// Store persists flash entries between requests.
type Store interface {
	// Push appends a flash entry to the session queue and refreshes its TTL.
	Push(context context.Context, sessionID string, flash Flash, ttl time.Duration) error
	// Pop returns every queued entry and clears the queue.
	Pop(context context.Context, sessionID string) ([]Flash, error)
}

// Session is the visitor's handle for the current request.
type Session struct {
	ID    string
	IsNew bool

	store Store
	ttl   time.Duration
}

// New builds a session bound to a store. A nil store yields a session that
// silently drops flashes.
func New(id string, store Store, ttl time.Duration) *Session {
	return &Session{ID: id, store: store, ttl: ttl}
}

// AddFlash queues a notice for the next rendered page.
func (current *Session) AddFlash(context context.Context, kind, key string) error {
	if current == nil || current.store == nil {
		return nil
	}
	return current.store.Push(context, current.ID, Flash{Kind: kind, Key: key}, current.ttl)
}

// Flashes pops the queued notices. Reading them consumes them.
func (current *Session) Flashes(context context.Context) ([]Flash, error) {
	if current == nil || current.store == nil {
		return nil, nil
	}
	return current.store.Pop(context, current.ID)
}
