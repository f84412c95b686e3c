package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

func newTestMainLoop(t *testing.T) (mainLoopModel, serviceMocks) {
	t.Helper()
	services, mocks := newServiceMocks(t)
	return newMainLoopModel(context.Background(), services, testSession, models.ThemeDark), mocks
}

func mainUpdate(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func testRecord(id string) models.AnalysisRecord {
	return models.AnalysisRecord{
		ID:                id,
		Timestamp:         "2026-01-01T10:00:00Z",
		AnalysisType:      "SMS",
		ScamType:          "Lottery fraud",
		RiskScore:         91,
		RiskLevel:         models.RiskCritical,
		ThreatIndicators:  []string{"prize claim", "upfront fee"},
		RecommendedAction: "Do not pay",
		Verdict:           "Classic advance-fee lottery scam.",
	}
}

// ── analysis ──────────────────────────────────────────────────────────────────

func TestMainLoop_AnalyzeEmptyInputRejectedLocally(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, app.MsgEmptyInput, m.errMsg)
}

func TestMainLoop_AnalyzeTextShowsReport(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	m.text.SetValue("You won a prize! Pay the fee to claim.")

	record := testRecord("r1")
	mocks.orchestrator.EXPECT().
		Analyze(gomock.Any(), testSession, models.AnalysisRequest{Text: "You won a prize! Pay the fee to claim."}).
		Return(record, nil)

	// Act
	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlS))
	require.True(t, m.loading)
	assert.Contains(t, m.View(), "ANALYZING")

	done := find[analysisDoneMsg](t, collect(t, cmd))
	m, _ = mainUpdate(t, m, done)

	// Assert
	assert.False(t, m.loading)
	assert.Equal(t, viewResult, m.view)
	require.NotNil(t, m.record)
	assert.Equal(t, "r1", m.record.ID)

	view := m.View()
	assert.Contains(t, view, "FRAUD DNA REPORT")
	assert.Contains(t, view, "Lottery fraud")
	assert.Contains(t, view, "prize claim, upfront fee")
	assert.Contains(t, view, "advance-fee lottery scam")
}

func TestMainLoop_AnalyzeAttachesImage(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))
	m.imagePath.SetValue(path)

	var got models.AnalysisRequest
	mocks.orchestrator.EXPECT().Analyze(gomock.Any(), testSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, req models.AnalysisRequest) (models.AnalysisRecord, error) {
			got = req
			return testRecord("r2"), nil
		})

	// Act
	_, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlS))
	find[analysisDoneMsg](t, collect(t, cmd))

	// Assert
	require.NotNil(t, got.Image)
	assert.Equal(t, "image/png", got.Image.MIMEType)
	assert.Equal(t, png, got.Image.Data)
	assert.Empty(t, got.Text)
}

func TestMainLoop_AnalyzeUnreadableImage(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.imagePath.SetValue(filepath.Join(t.TempDir(), "missing.png"))

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlS))
	done := find[analysisDoneMsg](t, collect(t, cmd))
	m, _ = mainUpdate(t, m, done)

	assert.ErrorIs(t, done.err, errImageUnreadable)
	assert.False(t, m.loading)
	assert.Equal(t, viewInput, m.view)
	assert.Equal(t, "The screenshot file could not be read.", m.errMsg)
}

func TestMainLoop_AnalysisErrorShowsMessage(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.loading = true

	m, _ = mainUpdate(t, m, analysisDoneMsg{err: gateway.ErrAnalysisParse})

	assert.False(t, m.loading)
	assert.Equal(t, viewInput, m.view)
	assert.Equal(t, app.MsgAnalysisFailed, m.errMsg)
}

func TestMainLoop_StaleResponsesIgnored(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{name: "analysis", msg: analysisDoneMsg{err: service.ErrStaleResponse}},
		{name: "registry", msg: registryDoneMsg{err: service.ErrStaleResponse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMainLoop(t)
			m.loading = true

			m, cmd := mainUpdate(t, m, tt.msg)

			assert.Nil(t, cmd)
			assert.True(t, m.loading)
			assert.Empty(t, m.errMsg)
			assert.Equal(t, viewInput, m.view)
		})
	}
}

func TestMainLoop_EscCancelsInFlightRequest(t *testing.T) {
	m, mocks := newTestMainLoop(t)
	m.loading = true
	mocks.orchestrator.EXPECT().Reset()

	m, _ = mainUpdate(t, m, keyPress(tea.KeyEsc))

	assert.False(t, m.loading)
	assert.Equal(t, "Request cancelled", m.status)
}

func TestMainLoop_KeysIgnoredWhileLoading(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.loading = true

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlG))

	assert.Nil(t, cmd)
	assert.True(t, m.loading)
}

func TestMainLoop_ResultEscStartsNewAnalysis(t *testing.T) {
	m, mocks := newTestMainLoop(t)
	record := testRecord("r1")
	m.record = &record
	m.view = viewResult
	m.text.SetValue("old message")
	mocks.orchestrator.EXPECT().Reset()

	m, _ = mainUpdate(t, m, keyPress(tea.KeyEsc))

	assert.Equal(t, viewInput, m.view)
	assert.Empty(t, m.text.Value())
}

func TestMainLoop_CopyWithoutVerdict(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.record = &models.AnalysisRecord{ID: "r1"}
	m.view = viewResult

	m, _ = mainUpdate(t, m, runes("c"))

	assert.Equal(t, "Nothing to copy", m.status)
}

func TestMainLoop_ClearInput(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.text.SetValue("text")
	m.imagePath.SetValue("/tmp/x.png")

	m, _ = mainUpdate(t, m, keyPress(tea.KeyCtrlX))

	assert.Empty(t, m.text.Value())
	assert.Empty(t, m.imagePath.Value())
}

func TestMainLoop_TabSwitchesInputFocus(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, _ = mainUpdate(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, focusImage, m.inputFocus)
	assert.True(t, m.imagePath.Focused())

	m, _ = mainUpdate(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, focusText, m.inputFocus)
	assert.True(t, m.text.Focused())
}

// ── registry ──────────────────────────────────────────────────────────────────

func TestMainLoop_RegistryFlow(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	entries := []models.RegistryEntry{
		{FlagID: "FLAG-1", EmailAddress: "alerts@paypa1.com", RiskLevel: "CRITICAL", RiskScore: 95, Impersonates: "PayPal"},
		{FlagID: "FLAG-2", EmailAddress: "kyc@sbi-update.in", RiskLevel: "HIGH", RiskScore: 80, LinkedUPIIDs: []string{"scam@upi"}},
	}
	mocks.orchestrator.EXPECT().FetchRegistry(gomock.Any(), testSession).Return(entries, nil)

	// Act
	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlG))
	m, _ = mainUpdate(t, m, find[registryDoneMsg](t, collect(t, cmd)))
	m, _ = mainUpdate(t, m, keyPress(tea.KeyDown))

	// Assert
	assert.Equal(t, viewRegistry, m.view)
	assert.Equal(t, 1, m.registryIdx)
	view := m.View()
	assert.Contains(t, view, "alerts@paypa1.com")
	assert.Contains(t, view, "scam@upi")

	mocks.orchestrator.EXPECT().Reset()
	m, _ = mainUpdate(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, viewInput, m.view)
}

func TestMainLoop_RegistryFailure(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.loading = true

	m, _ = mainUpdate(t, m, registryDoneMsg{err: gateway.ErrRegistryParse})

	assert.Equal(t, app.MsgRegistryUnavailable, m.errMsg)
	assert.Equal(t, viewInput, m.view)
}

// ── history ───────────────────────────────────────────────────────────────────

func TestMainLoop_HistorySelect(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	records := []models.AnalysisRecord{testRecord("r1"), testRecord("r2")}
	mocks.orchestrator.EXPECT().History(gomock.Any()).Return(records, nil)
	mocks.orchestrator.EXPECT().SelectHistory(gomock.Any(), "r2").Return(records[1], nil)

	// Act
	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlO))
	m, _ = mainUpdate(t, m, cmd())
	require.Equal(t, viewHistory, m.view)

	m, _ = mainUpdate(t, m, keyPress(tea.KeyDown))
	m, cmd = mainUpdate(t, m, keyPress(tea.KeyEnter))
	m, _ = mainUpdate(t, m, cmd())

	// Assert
	assert.Equal(t, viewResult, m.view)
	require.NotNil(t, m.record)
	assert.Equal(t, "r2", m.record.ID)
}

func TestMainLoop_HistoryClearNeedsConfirmation(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	m.view = viewHistory
	m.history = []models.AnalysisRecord{testRecord("r1")}

	// Act: first decline, then confirm
	m, _ = mainUpdate(t, m, runes("x"))
	require.True(t, m.confirmClear)
	m, _ = mainUpdate(t, m, runes("n"))
	require.False(t, m.confirmClear)

	mocks.orchestrator.EXPECT().ClearHistory(gomock.Any()).Return(nil)
	m, _ = mainUpdate(t, m, runes("x"))
	m, cmd := mainUpdate(t, m, runes("y"))
	m, _ = mainUpdate(t, m, cmd())

	// Assert
	assert.False(t, m.confirmClear)
	assert.Empty(t, m.history)
	assert.Equal(t, "History cleared", m.status)
}

func TestMainLoop_EmptyHistory(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.view = viewHistory

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyEnter))

	assert.NotNil(t, cmd)
	assert.Equal(t, "History is empty", m.status)
	assert.Contains(t, m.View(), "No analyses yet.")
}

// ── preferences ───────────────────────────────────────────────────────────────

func TestMainLoop_ToggleTheme(t *testing.T) {
	m, mocks := newTestMainLoop(t)
	mocks.preferences.EXPECT().ToggleTheme(gomock.Any()).Return(models.ThemeLight, nil)

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlT))
	m, _ = mainUpdate(t, m, cmd())

	assert.Equal(t, models.ThemeLight, m.theme)
	assert.Equal(t, "Theme: light", m.status)
}

func TestMainLoop_SaveAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKey    string
		wantStatus string
		wantHasKey bool
	}{
		{name: "save", input: "  AIza-new  ", wantKey: "AIza-new", wantStatus: "API key saved", wantHasKey: true},
		{name: "clear", input: "", wantKey: "", wantStatus: "API key cleared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m, mocks := newTestMainLoop(t)
			mocks.preferences.EXPECT().Preferences(gomock.Any()).Return(models.Preferences{APIKey: "old"}, nil)
			mocks.preferences.EXPECT().SetAPIKey(gomock.Any(), tt.wantKey).Return(nil)

			m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlK))
			require.Equal(t, viewSettings, m.view)
			m, _ = mainUpdate(t, m, cmd())
			require.True(t, m.hasAPIKey)

			// Act
			m.apiKey.SetValue(tt.input)
			m, cmd = mainUpdate(t, m, keyPress(tea.KeyEnter))
			m, _ = mainUpdate(t, m, cmd())

			// Assert
			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantHasKey, m.hasAPIKey)
			assert.Empty(t, m.apiKey.Value())
			assert.NotContains(t, m.View(), "AIza-new")
		})
	}
}

// ── account ───────────────────────────────────────────────────────────────────

func TestMainLoop_ChangePassword(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	m, _ = mainUpdate(t, m, keyPress(tea.KeyCtrlP))
	require.Equal(t, viewPassword, m.view)

	setFields(&m.password, "old-pass", "new-pass", "other")
	m, cmd := mainUpdate(t, m, keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Equal(t, "Passwords do not match", m.errMsg)

	mocks.credentials.EXPECT().ChangePassword(gomock.Any(), testSession.Email, "old-pass", "new-pass").Return(nil)
	setFields(&m.password, "old-pass", "new-pass", "new-pass")

	// Act
	m, cmd = mainUpdate(t, m, keyPress(tea.KeyEnter))
	m, _ = mainUpdate(t, m, cmd())

	// Assert
	assert.Equal(t, viewInput, m.view)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, "Password changed", m.status)
	assert.Empty(t, m.password.value(0))
}

func TestMainLoop_ChangePasswordWrongCurrent(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.view = viewPassword
	m.passwordBusy = true

	m, _ = mainUpdate(t, m, passwordChangedMsg{err: service.ErrIncorrectPassword})

	assert.False(t, m.passwordBusy)
	assert.Equal(t, viewPassword, m.view)
	assert.Equal(t, app.MsgIncorrectPassword, m.errMsg)
}

func TestMainLoop_LogoutResetsOrchestrator(t *testing.T) {
	// Arrange
	m, mocks := newTestMainLoop(t)
	gomock.InOrder(
		mocks.credentials.EXPECT().Logout(gomock.Any()).Return(nil),
		mocks.orchestrator.EXPECT().Reset(),
	)

	// Act
	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlL))
	m, quit := mainUpdate(t, m, cmd())

	// Assert
	assert.True(t, m.logout)
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit())
}

func TestMainLoop_CtrlCQuitsWithoutLogout(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, cmd := mainUpdate(t, m, keyPress(tea.KeyCtrlC))

	assert.False(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
