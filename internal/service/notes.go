// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package service

import (
	"context"
	"sync"

	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/store"
	"github.com/notasapp/go-notas/internal/validators"
	"github.com/notasapp/go-notas/models"
)

// notesStore keeps the collection consistent under overlapping asynchronous
// completions with one discipline: every operation draws a sequence number
// when it starts, and a completed result is applied only when nothing newer
// has been applied and, for loads, no newer load has started. A mutation
// drawn after a load therefore always beats that load's late response.
type notesStore struct {
	adapter adapter.ServerAdapter
	cache   store.NotesCache // nil disables offline persistence
	logger  *logger.Logger

	mu      sync.Mutex
	notes   []models.Note
	loading bool
	lastErr error

	seq     uint64 // last issued sequence number
	applied uint64 // highest sequence number whose result was applied
	loadSeq uint64 // sequence number of the most recently started load
	closed  bool
}

// NewNotesStore builds the [NotesService]. cache may be nil, in which case
// the store is purely in-memory.
func NewNotesStore(serverAdapter adapter.ServerAdapter, cache store.NotesCache, log *logger.Logger) NotesService {
	return &notesStore{adapter: serverAdapter, cache: cache, logger: log}
}

// Load implements [NotesService].
func (s *notesStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.seq++
	seq := s.seq
	s.loadSeq = seq
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	notes, err := s.adapter.ListNotes(ctx)
	err = mapAdapterError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Discard stale completions: a newer load has started, a newer result
	// has been applied, or the store was torn down while we were waiting.
	if s.closed || seq != s.loadSeq || seq < s.applied {
		if seq == s.loadSeq {
			// No newer load will clear the flag for us.
			s.loading = false
		}
		s.logger.Debug().Uint64("seq", seq).Msg("discarding superseded load result")
		return nil
	}

	s.loading = false
	if err != nil {
		// The previous list stays; the screens render it with the error.
		s.lastErr = err
		return err
	}

	s.notes = notes
	s.applied = seq
	s.persistLocked(ctx)
	return nil
}

// Hydrate implements [NotesService]. It reads the cached list for the user
// identified by the current token and installs it only when no load result
// has been applied yet.
func (s *notesStore) Hydrate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	userID := models.ParseToken(s.adapter.Token()).UserID
	if userID == 0 {
		return nil
	}

	notes, err := s.cache.LoadNotes(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("offline cache hydration failed")
		return err
	}
	if len(notes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.applied > 0 {
		return nil
	}
	s.notes = notes
	return nil
}

// Snapshot implements [NotesService].
func (s *notesStore) Snapshot() NotesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)
	return NotesSnapshot{Notes: notes, Loading: s.loading, Err: s.lastErr}
}

// Create implements [NotesService]. Policy: the server-returned record is
// appended to the list; no implicit full reload.
func (s *notesStore) Create(ctx context.Context, titulo, descripcion string) (models.Note, error) {
	if err := validators.ValidateNoteDraft(titulo); err != nil {
		return models.Note{}, err
	}

	seq, err := s.begin()
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.CreateNote(ctx, models.NoteDraft{Titulo: titulo, Descripcion: descripcion})
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	s.apply(ctx, seq, func() {
		s.upsertLocked(note)
	})
	return note, nil
}

// Update implements [NotesService]. The matching entry is replaced in place,
// preserving its position.
func (s *notesStore) Update(ctx context.Context, id int64, titulo, descripcion string) (models.Note, error) {
	if err := validators.ValidateNoteDraft(titulo); err != nil {
		return models.Note{}, err
	}

	seq, err := s.begin()
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.UpdateNote(ctx, id, models.NoteDraft{Titulo: titulo, Descripcion: descripcion})
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	s.apply(ctx, seq, func() {
		s.upsertLocked(note)
	})
	return note, nil
}

// Delete implements [NotesService]. The removal is pessimistic: the entry
// leaves the list only after the server confirms.
func (s *notesStore) Delete(ctx context.Context, id int64) error {
	seq, err := s.begin()
	if err != nil {
		return err
	}

	if err = s.adapter.DeleteNote(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	s.apply(ctx, seq, func() {
		for i, n := range s.notes {
			if n.ID == id {
				s.notes = append(s.notes[:i], s.notes[i+1:]...)
				break
			}
		}
	})
	return nil
}

// Close implements [NotesService].
func (s *notesStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// begin draws a sequence number for a mutation.
func (s *notesStore) begin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	s.seq++
	return s.seq, nil
}

// apply runs mutate under the lock if the result with this sequence number
// is still the newest. A mutation superseded by a later applied result is
// dropped: the later result already reflects the server state.
func (s *notesStore) apply(ctx context.Context, seq uint64, mutate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq < s.applied {
		return
	}
	mutate()
	s.applied = seq
	s.persistLocked(ctx)
}

// upsertLocked replaces the entry with a matching id in place, preserving
// its position, or appends when the id is not present. Callers hold s.mu.
func (s *notesStore) upsertLocked(note models.Note) {
	for i, n := range s.notes {
		if n.ID == note.ID {
			s.notes[i] = note
			return
		}
	}
	s.notes = append(s.notes, note)
}

// persistLocked writes the current list to the offline cache, best effort.
// Callers hold s.mu.
func (s *notesStore) persistLocked(ctx context.Context) {
	if s.cache == nil {
		return
	}
	userID := models.ParseToken(s.adapter.Token()).UserID
	if userID == 0 {
		return
	}
	if err := s.cache.SaveNotes(ctx, userID, s.notes); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("offline cache write failed")
	}
}
