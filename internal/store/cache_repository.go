package store

import (
	"context"
	"fmt"

	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/models"
)

type notesCacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotesCacheRepository builds the sqlite-backed [NotesCache].
func NewNotesCacheRepository(db *DB) NotesCache {
	return &notesCacheRepository{db: db, logger: db.logger}
}

// SaveNotes implements [NotesCache]. The user's rows are replaced inside one
// transaction so a failure leaves the previous cache intact.
func (r *notesCacheRepository) SaveNotes(ctx context.Context, userID int64, notes []models.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteNotesForUser, userID); err != nil {
		r.logger.Err(err).Int64("user_id", userID).Msg("failed to clear cached notes")
		return fmt.Errorf("clear cached notes: %w", err)
	}

	for pos, note := range notes {
		if _, err = tx.ExecContext(ctx, insertCachedNote, userID, note.ID, note.Titulo, note.Descripcion, pos); err != nil {
			r.logger.Err(err).Int64("user_id", userID).Int64("note_id", note.ID).Msg("failed to insert cached note")
			return fmt.Errorf("insert cached note (id=%d): %w", note.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}
	return nil
}

// LoadNotes implements [NotesCache].
func (r *notesCacheRepository) LoadNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotesForUser, userID)
	if err != nil {
		r.logger.Err(err).Int64("user_id", userID).Msg("failed to query cached notes")
		return nil, fmt.Errorf("query cached notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.Titulo, &note.Descripcion); err != nil {
			return nil, fmt.Errorf("scan cached note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached note rows: %w", err)
	}

	return notes, nil
}
