package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
)

// fotosModel browses the local photo gallery directory. Selecting a file
// copies its path to the clipboard so it can be pasted into a note.
type fotosModel struct {
	picker   filepicker.Model
	selected string
	status   string
}

func newFotosModel(galleryDir string) fotosModel {
	picker := filepicker.New()
	picker.CurrentDirectory = galleryDir
	picker.AllowedTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	picker.Height = 12
	return fotosModel{picker: picker}
}

func (m fotosModel) View() string {
	body := m.picker.View()
	if m.status != "" {
		body += "\n" + m.status
	}
	return renderPage("FOTOS", body, "esc: atrás │ enter: copiar ruta")
}
