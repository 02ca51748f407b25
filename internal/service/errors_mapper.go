// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notasapp/go-notas/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error, keeping the backend message for display.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrSessionExpired, extractBody(err))
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNoteNotFound, extractBody(err))
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %s", ErrServerUnavailable, extractBody(err))
	}

	return err
}

// extractBody extracts the body from a message of the form "sentinel: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
