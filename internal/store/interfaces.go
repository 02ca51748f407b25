// Package store implements the client's offline cache: the last successfully
// loaded note list persisted per user in a local sqlite database, so the list
// screen can render before the first load completes or while the backend is
// unreachable. The cache is never a source of truth over a successful load.
package store

import (
	"context"

	"github.com/notasapp/go-notas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_cache_mock.go -package=mock

// NotesCache persists and restores one user's note list.
type NotesCache interface {
	// SaveNotes replaces the cached list for userID with notes, preserving
	// order. The replacement is atomic: a failure leaves the previous cache
	// contents intact.
	SaveNotes(ctx context.Context, userID int64, notes []models.Note) error

	// LoadNotes returns the cached list for userID in saved order. An empty
	// cache yields an empty slice, not an error.
	LoadNotes(ctx context.Context, userID int64) ([]models.Note, error)
}
