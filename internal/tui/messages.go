package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/models"
)

// NavigateTo switches the RootModel to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type LoginResult struct {
	Session models.Session
	Err     error
}

type RegisterResult struct {
	Session models.Session
	Err     error
}

type ResetPasswordResult struct {
	Email string
	Err   error
}

// MenuNotice is shown once on top of the menu.
type MenuNotice struct {
	Text string
}

type analysisDoneMsg struct {
	record models.AnalysisRecord
	err    error
}

type registryDoneMsg struct {
	entries []models.RegistryEntry
	err     error
}

type historyLoadedMsg struct {
	records []models.AnalysisRecord
	err     error
}

type historySelectedMsg struct {
	record models.AnalysisRecord
	err    error
}

type historyClearedMsg struct {
	err error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type apiKeySavedMsg struct {
	cleared bool
	err     error
}

type passwordChangedMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type preferencesLoadedMsg struct {
	hasAPIKey bool
	err       error
}
