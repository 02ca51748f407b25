package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Iniciar sesión", "Crear cuenta"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("Notas") + "\n\nElige una opción:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("q salir")
	return out
}
