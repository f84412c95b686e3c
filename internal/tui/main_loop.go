package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

type mainView int

const (
	viewInput mainView = iota
	viewResult
	viewRegistry
	viewHistory
	viewSettings
	viewPassword
)

const (
	focusText = iota
	focusImage
)

const statusTTL = 3 * time.Second

// mainLoopModel is the signed-in screen: message input, the Fraud DNA
// report, the offender registry, history and settings.
type mainLoopModel struct {
	ctx          context.Context
	credentials  service.CredentialService
	orchestrator service.Orchestrator
	preferences  service.PreferencesService
	session      models.Session

	theme  models.Theme
	styles styles
	width  int

	view    mainView
	loading bool
	spinner spinner.Model

	text       textarea.Model
	imagePath  textinput.Model
	inputFocus int

	record *models.AnalysisRecord

	registry    []models.RegistryEntry
	registryIdx int

	history      []models.AnalysisRecord
	historyIdx   int
	confirmClear bool

	apiKey    textinput.Model
	hasAPIKey bool

	password     form
	passwordBusy bool

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, session models.Session, theme models.Theme) mainLoopModel {
	ta := textarea.New()
	ta.Placeholder = "Paste a suspicious SMS, email or chat message..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 20000
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	apiKey := newInput("paste a key, leave empty to clear", true)

	return mainLoopModel{
		ctx:          ctx,
		credentials:  services.CredentialService,
		orchestrator: services.Orchestrator,
		preferences:  services.PreferencesService,
		session:      session,
		theme:        theme,
		styles:       newStyles(theme),
		spinner:      s,
		text:         ta,
		imagePath:    newInput("optional path to a screenshot", false),
		apiKey:       apiKey,
		password: newForm(
			formField{label: "Current password", input: newInput("current password", true)},
			formField{label: "New password", input: newInput("at least 6 characters", true)},
			formField{label: "Confirm password", input: newInput("repeat new password", true)},
		),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.text.SetWidth(min(msg.Width-8, 100))
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case analysisDoneMsg:
		if errors.Is(msg.err, service.ErrStaleResponse) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		record := msg.record
		m.record = &record
		m.errMsg = ""
		m.view = viewResult
		return m, nil
	case registryDoneMsg:
		if errors.Is(msg.err, service.ErrStaleResponse) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.registry = msg.entries
		m.registryIdx = 0
		m.errMsg = ""
		m.view = viewRegistry
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.history = msg.records
		m.historyIdx = 0
		m.confirmClear = false
		m.errMsg = ""
		m.view = viewHistory
		return m, nil
	case historySelectedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		record := msg.record
		m.record = &record
		m.errMsg = ""
		m.view = viewResult
		return m, nil
	case historyClearedMsg:
		m.confirmClear = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.history = nil
		m.historyIdx = 0
		return m.withStatus("History cleared")
	case themeChangedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.theme = msg.theme
		m.styles = newStyles(msg.theme)
		return m.withStatus("Theme: " + string(msg.theme))
	case preferencesLoadedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.hasAPIKey = msg.hasAPIKey
		return m, nil
	case apiKeySavedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.hasAPIKey = !msg.cleared
		m.apiKey.SetValue("")
		m.errMsg = ""
		if msg.cleared {
			return m.withStatus("API key cleared")
		}
		return m.withStatus("API key saved")
	case passwordChangedMsg:
		m.passwordBusy = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.password.reset()
		m.errMsg = ""
		m.showInput()
		return m.withStatus("Password changed")
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		return m.withStatus("Verdict copied")
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInput(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	if m.loading {
		if key.Matches(keyMsg, keys.esc) {
			m.orchestrator.Reset()
			m.loading = false
			return m.withStatus("Request cancelled")
		}
		return m, nil
	}

	switch m.view {
	case viewResult:
		return m.updateResult(keyMsg)
	case viewRegistry:
		return m.updateRegistry(keyMsg)
	case viewHistory:
		return m.updateHistory(keyMsg)
	case viewSettings:
		return m.updateSettings(keyMsg)
	case viewPassword:
		return m.updatePassword(keyMsg)
	default:
		return m.updateInput(keyMsg)
	}
}

func (m mainLoopModel) updateInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.analyze):
		request := models.AnalysisRequest{Text: m.text.Value()}
		path := strings.TrimSpace(m.imagePath.Value())
		if strings.TrimSpace(request.Text) == "" && path == "" {
			m.errMsg = userMessage(service.ErrEmptyInput)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdAnalyze(request, path))
	case key.Matches(keyMsg, keys.registry):
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdFetchRegistry())
	case key.Matches(keyMsg, keys.history):
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.settings):
		m.errMsg = ""
		m.view = viewSettings
		m.text.Blur()
		m.imagePath.Blur()
		m.apiKey.Focus()
		return m, m.cmdLoadPreferences()
	case key.Matches(keyMsg, keys.password):
		m.errMsg = ""
		m.view = viewPassword
		m.text.Blur()
		m.imagePath.Blur()
		m.password.reset()
		return m, nil
	case key.Matches(keyMsg, keys.clear):
		m.text.Reset()
		m.imagePath.SetValue("")
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		if m.inputFocus == focusText {
			m.inputFocus = focusImage
			m.text.Blur()
			return m, m.imagePath.Focus()
		}
		m.inputFocus = focusText
		m.imagePath.Blur()
		return m, m.text.Focus()
	}

	return m.forwardToInput(keyMsg)
}

func (m mainLoopModel) updateResult(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.orchestrator.Reset()
		m.showInput()
		m.text.Reset()
		m.imagePath.SetValue("")
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.record == nil || strings.TrimSpace(m.record.Verdict) == "" {
			return m.withStatus("Nothing to copy")
		}
		return m, cmdCopy(m.record.Verdict)
	case key.Matches(keyMsg, keys.history):
		return m, m.cmdLoadHistory()
	}
	return m, nil
}

func (m mainLoopModel) updateRegistry(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.orchestrator.Reset()
		m.showInput()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.registryIdx > 0 {
			m.registryIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.registryIdx < len(m.registry)-1 {
			m.registryIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdFetchRegistry())
	}
	return m, nil
}

func (m mainLoopModel) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		switch {
		case key.Matches(keyMsg, keys.yes):
			return m, m.cmdClearHistory()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmClear = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.showInput()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.history) == 0 {
			return m.withStatus("History is empty")
		}
		return m, m.cmdSelectHistory(m.history[m.historyIdx].ID)
	case key.Matches(keyMsg, keys.wipe):
		if len(m.history) == 0 {
			return m.withStatus("History is empty")
		}
		m.confirmClear = true
	}
	return m, nil
}

func (m mainLoopModel) updateSettings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.apiKey.Blur()
		m.apiKey.SetValue("")
		m.showInput()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m, m.cmdSaveAPIKey(strings.TrimSpace(m.apiKey.Value()))
	}

	var cmd tea.Cmd
	m.apiKey, cmd = m.apiKey.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updatePassword(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.password.reset()
		m.errMsg = ""
		m.showInput()
		return m, nil
	case "tab", "down":
		m.password.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.password.focusPrev()
		return m, nil
	case "enter":
		if m.passwordBusy {
			return m, nil
		}
		if m.password.value(1) != m.password.value(2) {
			m.errMsg = "Passwords do not match"
			return m, nil
		}
		m.errMsg = ""
		m.passwordBusy = true
		return m, m.cmdChangePassword(m.password.value(0), m.password.value(1))
	}

	return m, m.password.update(keyMsg)
}

// forwardToInput passes msg to whichever widget of the current view takes text.
func (m mainLoopModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewInput:
		if m.inputFocus == focusImage {
			m.imagePath, cmd = m.imagePath.Update(msg)
		} else {
			m.text, cmd = m.text.Update(msg)
		}
	case viewSettings:
		m.apiKey, cmd = m.apiKey.Update(msg)
	case viewPassword:
		cmd = m.password.update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) showInput() {
	m.view = viewInput
	m.inputFocus = focusText
	m.imagePath.Blur()
	m.text.Focus()
}

func (m mainLoopModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
