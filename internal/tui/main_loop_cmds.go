package tui

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/models"
)

var errImageUnreadable = errors.New("image file could not be read")

func (m mainLoopModel) cmdAnalyze(request models.AnalysisRequest, imagePath string) tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator
	session := m.session

	return func() tea.Msg {
		if imagePath != "" {
			image, err := readImage(imagePath)
			if err != nil {
				return analysisDoneMsg{err: err}
			}
			request.Image = image
		}

		record, err := orchestrator.Analyze(ctx, session, request)
		return analysisDoneMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdFetchRegistry() tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator
	session := m.session

	return func() tea.Msg {
		entries, err := orchestrator.FetchRegistry(ctx, session)
		return registryDoneMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator

	return func() tea.Msg {
		records, err := orchestrator.History(ctx)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdSelectHistory(id string) tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator

	return func() tea.Msg {
		record, err := orchestrator.SelectHistory(ctx, id)
		return historySelectedMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator

	return func() tea.Msg {
		return historyClearedMsg{err: orchestrator.ClearHistory(ctx)}
	}
}

func (m mainLoopModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	preferences := m.preferences

	return func() tea.Msg {
		theme, err := preferences.ToggleTheme(ctx)
		return themeChangedMsg{theme: theme, err: err}
	}
}

func (m mainLoopModel) cmdLoadPreferences() tea.Cmd {
	ctx := m.ctx
	preferences := m.preferences

	return func() tea.Msg {
		prefs, err := preferences.Preferences(ctx)
		return preferencesLoadedMsg{hasAPIKey: prefs.APIKey != "", err: err}
	}
}

func (m mainLoopModel) cmdSaveAPIKey(apiKey string) tea.Cmd {
	ctx := m.ctx
	preferences := m.preferences

	return func() tea.Msg {
		return apiKeySavedMsg{cleared: apiKey == "", err: preferences.SetAPIKey(ctx, apiKey)}
	}
}

func (m mainLoopModel) cmdChangePassword(oldPassword, newPassword string) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	email := m.session.Email

	return func() tea.Msg {
		return passwordChangedMsg{err: credentials.ChangePassword(ctx, email, oldPassword, newPassword)}
	}
}

// cmdLogout closes the session and drops whatever the orchestrator was
// showing for it.
func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	orchestrator := m.orchestrator

	return func() tea.Msg {
		if err := credentials.Logout(ctx); err != nil {
			return logoutDoneMsg{err: err}
		}
		orchestrator.Reset()
		return logoutDoneMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// readImage loads a screenshot from disk and sniffs its MIME type.
func readImage(path string) (*models.InlineImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errImageUnreadable, err)
	}

	mimeType := http.DetectContentType(data)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return &models.InlineImage{MIMEType: mimeType, Data: data}, nil
}
