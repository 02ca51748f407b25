package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/notasapp/go-notas/models"
)

// editModel is the create/edit form for one note. When editing is true the
// submitted draft replaces the note with noteID, otherwise a new note is
// created.
type editModel struct {
	titleInput textinput.Model
	bodyArea   textarea.Model
	focusBody  bool
	editing    bool
	noteID     int64
	submitting bool
}

func newEditModel(note *models.Note) editModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "título"
	titleInput.CharLimit = 200
	titleInput.Width = 50
	titleInput.Focus()

	bodyArea := textarea.New()
	bodyArea.Placeholder = "descripción"
	bodyArea.SetWidth(50)
	bodyArea.SetHeight(8)

	m := editModel{titleInput: titleInput, bodyArea: bodyArea}
	if note != nil {
		m.editing = true
		m.noteID = note.ID
		m.titleInput.SetValue(note.Titulo)
		m.bodyArea.SetValue(note.Descripcion)
	}
	return m
}

func (m editModel) draft() models.NoteDraft {
	return models.NoteDraft{
		Titulo:      strings.TrimSpace(m.titleInput.Value()),
		Descripcion: m.bodyArea.Value(),
	}
}

func (m *editModel) toggleFocus() {
	if m.focusBody {
		m.bodyArea.Blur()
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
		m.bodyArea.Focus()
	}
	m.focusBody = !m.focusBody
}

func (m editModel) View() string {
	var b strings.Builder
	b.WriteString("Título\n[")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\nDescripción\n")
	b.WriteString(m.bodyArea.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Guardando...]\n")
	} else {
		b.WriteString("\n[Guardar]\n")
	}

	title := "NUEVA NOTA"
	if m.editing {
		title = "EDITAR NOTA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancelar │ tab: cambiar campo │ ctrl+s: guardar")
}
