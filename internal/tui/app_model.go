// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notasapp/go-notas/internal/service"
	"github.com/notasapp/go-notas/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenEdit
	screenFotos
)

type appModel struct {
	ctx        context.Context
	services   *service.ClientServices
	galleryDir string

	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	edit     editModel
	fotos    fotosModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	quitByUser bool
	err        error
}

func newAppModel(ctx context.Context, services *service.ClientServices, galleryDir string) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		galleryDir:    galleryDir,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login.errMsg = ""
		return m, m.enterList()
	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.register.errMsg = ""
		m.currentScreen = screenLogin
		m.login = newLoginModel()
		m.login.inputs[0].SetValue(msg.email)
		m.login.errMsg = "Cuenta creada, inicia sesión"
		return m, nil
	case notesLoadedMsg:
		m.refreshListFromSnapshot()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case noteSavedMsg:
		m.edit.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.enterList()
	case noteDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			m.refreshListFromSnapshot()
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.enterList()
	case loggedOutMsg:
		m.currentScreen = screenWelcome
		m.welcome = newWelcomeModel()
		m.login = newLoginModel()
		m.register = newRegisterModel()
		m.list = newListModel()
		return m, nil
	case copiedMsg:
		m.list.status = "¡Copiado!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.fotos.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.currentScreen == screenList && m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenFotos:
		return m.updateFotos(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenEdit:
		body = m.edit.View()
	case screenFotos:
		body = m.fotos.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// enterList switches to the list screen and kicks off a reload, so the list
// is refreshed every time it regains focus.
func (m *appModel) enterList() tea.Cmd {
	m.currentScreen = screenList
	m.refreshListFromSnapshot()
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
}

func (m *appModel) refreshListFromSnapshot() {
	snapshot := m.services.Notes.Snapshot()
	m.list.notes = snapshot.Notes
	m.list.loading = snapshot.Loading
	m.list.lastErr = snapshot.Err
	m.list.clampCursor()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
			m.login = newLoginModel()
		} else {
			m.currentScreen = screenRegister
			m.register = newRegisterModel()
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if pass != repeat {
				m.register.errMsg = "Las contraseñas no coinciden"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(email, pass)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.edit = newEditModel(&note)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.newNote):
		m.edit = newEditModel(nil)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(note.Preview(), 40)
		m.pendingDelete = note.ID
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		text := note.Descripcion
		if text == "" {
			text = note.Titulo
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		return m, m.enterList()
	case key.Matches(keyMsg, keys.gallery):
		m.fotos = newFotosModel(m.galleryDir)
		m.currentScreen = screenFotos
		return m, m.fotos.picker.Init()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.enterList()
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.edit.toggleFocus()
			return m, nil
		case keyMsg.String() == "ctrl+s":
			if m.edit.submitting {
				return m, nil
			}
			draft := m.edit.draft()
			m.edit.submitting = true
			if m.edit.editing {
				return m, m.cmdUpdateNote(m.edit.noteID, draft)
			}
			return m, m.cmdCreateNote(draft)
		case key.Matches(keyMsg, keys.enter):
			// Enter submits from the title field and inserts a newline in
			// the description area.
			if !m.edit.focusBody {
				if m.edit.submitting {
					return m, nil
				}
				draft := m.edit.draft()
				m.edit.submitting = true
				if m.edit.editing {
					return m, m.cmdUpdateNote(m.edit.noteID, draft)
				}
				return m, m.cmdCreateNote(draft)
			}
		}
	}

	var cmd tea.Cmd
	if m.edit.focusBody {
		m.edit.bodyArea, cmd = m.edit.bodyArea.Update(msg)
	} else {
		m.edit.titleInput, cmd = m.edit.titleInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateFotos(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m, m.enterList()
	}

	var cmd tea.Cmd
	m.fotos.picker, cmd = m.fotos.picker.Update(msg)

	if didSelect, path := m.fotos.picker.DidSelectFile(msg); didSelect {
		m.fotos.selected = path
		m.fotos.status = "Ruta copiada: " + fitText(path, 50)
		return m, tea.Batch(cmd, cmdCopyToClipboard(path), cmdClearStatus())
	}

	return m, cmd
}

func (m appModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	notes := m.services.Notes
	return func() tea.Msg {
		if _, err := session.Login(ctx, email, pass); err != nil {
			return loginDoneMsg{err: err}
		}
		// With a fresh token the offline cache can fill the list before
		// the first load completes. The cache is advisory, so a failed
		// read is not a login failure.
		_ = notes.Hydrate(ctx)
		return loginDoneMsg{}
	}
}

func (m appModel) cmdRegister(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		err := session.Register(ctx, email, pass)
		return registerDoneMsg{email: email, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		session.Logout()
		return loggedOutMsg{}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		err := notes.Load(ctx)
		return notesLoadedMsg{err: err}
	}
}

func (m appModel) cmdCreateNote(draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		_, err := notes.Create(ctx, draft.Titulo, draft.Descripcion)
		return noteSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateNote(id int64, draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		_, err := notes.Update(ctx, id, draft.Titulo, draft.Descripcion)
		return noteSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx := m.ctx
	notes := m.services.Notes
	return func() tea.Msg {
		err := notes.Delete(ctx, id)
		return noteDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
