// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

// Package service implements the client's session and note-collection logic:
// the authenticated session lifecycle and the single authoritative in-memory
// cache of the current user's notes, with CRUD operations that keep the
// cache consistent under concurrent asynchronous completions.
package service

import (
	"context"
	"time"

	"github.com/notasapp/go-notas/models"
)

// SessionService owns the authentication credential lifecycle: login,
// register, logout, and the session status visible to the screens.
type SessionService interface {
	// Login exchanges credentials for a bearer token. Empty inputs fail
	// locally with a validation error before any network call. A backend
	// rejection maps to [ErrInvalidCredentials]; the status remains
	// unauthenticated on any failure.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account. The full local rule set (trimmed
	// non-empty fields, address pattern, password length) is enforced
	// before any network call; a backend rejection maps to
	// [ErrRegistration] carrying the server message. No session is
	// established — callers proceed to Login.
	Register(ctx context.Context, email, password string) error

	// Logout clears the stored token synchronously. Idempotent.
	Logout()

	// Status returns the current session lifecycle state.
	Status() models.SessionStatus

	// Token returns the parsed view of the current credential. The zero
	// Token is returned when unauthenticated.
	Token() models.Token
}

// NotesSnapshot is the render-ready state of the note collection.
type NotesSnapshot struct {
	// Notes is the collection in server order, no duplicate ids.
	Notes []models.Note
	// Loading reports whether a load is in flight.
	Loading bool
	// Err is the last load failure, or nil. Cleared when a new load
	// starts. A failed load preserves the previous Notes.
	Err error
}

// NotesService is the single authoritative client-side cache of the current
// user's notes. All operations are safe for concurrent use; completions are
// ordered by sequence number so a stale response never overwrites a newer
// result.
type NotesService interface {
	// Load fetches the collection from the backend and replaces the cached
	// list on success. Safe to call on every screen focus: each call
	// supersedes the previous one, and a superseded response is discarded.
	Load(ctx context.Context) error

	// Hydrate fills an empty store from the offline cache. It never
	// overwrites state produced by a completed Load.
	Hydrate(ctx context.Context) error

	// Snapshot returns a copy of the current render state.
	Snapshot() NotesSnapshot

	// Create persists a new note and appends the server-assigned record to
	// the list. An empty title fails locally with a validation error. The
	// list is unchanged on failure.
	Create(ctx context.Context, titulo, descripcion string) (models.Note, error)

	// Update replaces the note with the given id in place, preserving its
	// position. The list is unchanged on failure.
	Update(ctx context.Context, id int64, titulo, descripcion string) (models.Note, error)

	// Delete removes the note with the given id after server confirmation.
	// The list is unchanged on failure.
	Delete(ctx context.Context, id int64) error

	// Close tears the store down: no in-flight result is applied after it
	// returns and all further operations fail with [ErrStoreClosed].
	Close()
}

// RefreshJob periodically reloads the note list in the background.
type RefreshJob interface {
	// Start launches the background goroutine reloading every interval,
	// defaulting to 5 minutes when interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated.
	Stop()
}
