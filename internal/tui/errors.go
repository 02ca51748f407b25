package tui

import (
	"errors"

	"github.com/notasapp/go-notas/internal/service"
	"github.com/notasapp/go-notas/internal/validators"
)

// humanizeError trims wrapped sentinel chains down to a short message the
// screen can show on one line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Email o contraseña incorrectos"
	case errors.Is(err, service.ErrSessionExpired):
		return "La sesión ha expirado, vuelve a iniciar sesión"
	case errors.Is(err, service.ErrServerUnavailable):
		return "No hay conexión con el servidor"
	case errors.Is(err, service.ErrNoteNotFound):
		return "La nota ya no existe en el servidor"
	case errors.Is(err, validators.ErrEmptyFields):
		return "Email y contraseña son obligatorios"
	case errors.Is(err, validators.ErrInvalidEmail):
		return "El email no es válido"
	case errors.Is(err, validators.ErrShortPassword):
		return "La contraseña debe tener al menos 8 caracteres"
	case errors.Is(err, validators.ErrEmptyTitle):
		return "El título es obligatorio"
	}

	return err.Error()
}
