package models

// Note is a single titled record owned by one user. The JSON field names
// follow the backend wire format.
type Note struct {
	// ID is the server-assigned identifier. Zero for a note that has not
	// been persisted yet.
	ID int64 `json:"id"`

	// Titulo is the display title. Never empty for a persisted note.
	Titulo string `json:"titulo"`

	// Descripcion is the freeform body. May contain markup; consumers use
	// [Note.Preview] for list rendering.
	Descripcion string `json:"descripcion"`
}

// NoteDraft carries the user-editable fields of a note for create and update
// requests.
type NoteDraft struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// Preview returns the list-screen preview of the note body, produced by
// [PreviewText].
func (n Note) Preview() string {
	return PreviewText(n.Descripcion)
}
