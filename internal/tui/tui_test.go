package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/internal/mock"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// ── shared fixtures ───────────────────────────────────────────────────────────

var testSession = models.Session{
	UserProfile: models.UserProfile{FullName: "Jane Doe", Email: "jane@example.com", IsVerified: true},
}

type serviceMocks struct {
	credentials  *mock.MockCredentialService
	orchestrator *mock.MockOrchestrator
	preferences  *mock.MockPreferencesService
}

func newServiceMocks(t *testing.T) (*service.Services, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		credentials:  mock.NewMockCredentialService(ctrl),
		orchestrator: mock.NewMockOrchestrator(ctrl),
		preferences:  mock.NewMockPreferencesService(ctrl),
	}
	return &service.Services{
		CredentialService:  m.credentials,
		Orchestrator:       m.orchestrator,
		PreferencesService: m.preferences,
	}, m
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into the produced messages. It must
// not be given commands that sleep, such as tea.Tick.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		if c != nil {
			msgs = append(msgs, collect(t, c)...)
		}
	}
	return msgs
}

// find returns the first message of type T in msgs.
func find[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed
		}
	}
	var zero T
	require.Failf(t, "message not produced", "%T not in %v", zero, msgs)
	return zero
}
