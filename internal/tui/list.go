package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/notasapp/go-notas/models"
)

const listPreviewWidth = 60

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("Notas")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading && len(m.notes) == 0 {
		out += "Cargando...\n"
	} else if len(m.notes) == 0 {
		out += "No hay notas\n"
	} else {
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, fitText(note.Preview(), listPreviewWidth))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\n" + errorStyle.Render("Error: "+humanizeError(m.lastErr)) + "\n"
	}

	out += "\n" + helpStyle.Render("n nueva  e editar  d borrar  c copiar  r recargar  f fotos  l salir de la cuenta  q salir")
	return out
}
