// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

// Package adapter provides the transport layer for communicating with the
// notes backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/notasapp/go-notas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// backend. Implementations are responsible for serialisation, Authorization
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called by Login on success.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string when no session is established.
	Token() string

	// ClearToken drops the stored bearer token. Safe to call when no token
	// is held.
	ClearToken()

	// OnUnauthorized registers fn to be invoked whenever an authenticated
	// request is rejected with a 401-equivalent response. The session layer
	// uses it to clear its state regardless of which operation tripped the
	// rejection.
	OnUnauthorized(fn func())

	// Login exchanges credentials for a bearer token via POST /login. On
	// success the token is stored via SetToken and returned. Returns
	// [ErrUnauthorized] (wrapped) when the backend rejects the credentials.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register creates a new account via POST /register. It does not
	// establish a session; callers proceed to Login. Returns an error
	// carrying the backend message when the server rejects the request.
	Register(ctx context.Context, creds models.Credentials) error

	// ListNotes fetches the full note collection via GET /notes, server
	// order preserved. Fails with [ErrUnauthorized] before any network call
	// when no token is held.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote persists a new note via POST /notes and returns the
	// server-assigned record.
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// UpdateNote replaces the note identified by id via PUT /notes/:id and
	// returns the updated record. Returns [ErrNotFound] (wrapped) when the
	// id does not exist server-side.
	UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error)

	// DeleteNote removes the note identified by id via DELETE /notes/:id.
	// Returns [ErrNotFound] (wrapped) when the id does not exist.
	DeleteNote(ctx context.Context, id int64) error
}
