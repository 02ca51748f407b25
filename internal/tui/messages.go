package tui

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	email string
	err   error
}

type notesLoadedMsg struct {
	err error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type loggedOutMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
