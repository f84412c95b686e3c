package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// AuthFlow runs the sign-in menu until a session is opened or the user quits.
func (t *TUI) AuthFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.CredentialService),
		pageRegister: NewRegisterModel(ctx, t.services.CredentialService),
		pageForgot:   NewForgotPasswordModel(ctx, t.services.CredentialService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.AuthFlow").Msg("session opened")
	return result.session, nil
}

// MainLoop runs the analysis screen for session. logout reports whether the
// user signed out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	theme, err := t.services.PreferencesService.Theme(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.MainLoop").Msg("error loading theme, using default")
		theme = models.DefaultTheme
	}

	model := newMainLoopModel(ctx, t.services, session, theme)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
