package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistration       = errors.New("registration failed")
	ErrSessionExpired     = errors.New("session expired")

	ErrNoteNotFound      = errors.New("note not found")
	ErrServerUnavailable = errors.New("server unavailable")

	ErrStoreClosed = errors.New("notes store is closed")
)
