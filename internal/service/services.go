package service

import (
	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/store"
)

// ClientServices aggregates the client service layer.
type ClientServices struct {
	Session SessionService
	Notes   NotesService
	Refresh RefreshJob
}

// NewClientServices wires the services on top of the server adapter. cache
// may be nil to disable offline persistence.
func NewClientServices(serverAdapter adapter.ServerAdapter, cache store.NotesCache, log *logger.Logger) *ClientServices {
	notes := NewNotesStore(serverAdapter, cache, log)

	return &ClientServices{
		Session: NewSessionService(serverAdapter, log),
		Notes:   notes,
		Refresh: NewRefreshJob(notes),
	}
}
