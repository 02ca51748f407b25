package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc cerrar"
	return overlayBoxStyle.Render(content)
}
