// Package tui is the terminal user interface of the notes client. It is a
// Bubble Tea application with one router model that owns every screen:
// welcome, login, register, note list, note editor and the photo gallery
// picker. Screens talk to the service layer through async tea.Cmd closures
// so the event loop never blocks on the network.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services   *service.ClientServices
	galleryDir string
	logger     *logger.Logger
}

func New(services *service.ClientServices, galleryDir string, log *logger.Logger) *TUI {
	return &TUI{services: services, galleryDir: galleryDir, logger: log}
}

// Run drives the whole client session: authentication first, then the main
// notes loop. Returns ErrUserQuit when the user closed the program.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("gallery_dir", t.galleryDir).Msg("starting interactive client")

	model := newAppModel(ctx, t.services, t.galleryDir)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		t.logger.Error().Err(runErr).Msg("terminal program failed")
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("client closed by user")
		return ErrUserQuit
	}
	if result.err != nil {
		t.logger.Error().Err(result.err).Msg("client stopped with error")
	}
	return result.err
}
