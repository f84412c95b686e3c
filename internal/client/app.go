package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/tui"
	"github.com/MKhiriev/go-fraud-guard/models"
)

type App struct {
	repository store.Repository
	services   *service.Services
	ui         UI

	logger *logger.Logger
}

// NewApp opens the storage backend and builds the service graph and the
// terminal UI on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	repository, err := store.NewRepository(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating local storage: %w", err)
	}

	keys := adapter.NewKeyProvider(repository, cfg.Generator.APIKey)
	generator, err := adapter.NewGenerator(cfg.Generator, keys, log)
	if err != nil {
		_ = repository.Close()
		return nil, fmt.Errorf("error creating generator: %w", err)
	}

	services, err := service.NewServices(repository, gateway.NewGateway(generator, log), config.StructuredConfig{
		App:       cfg.App,
		Generator: cfg.Generator,
		Storage:   cfg.Storage,
	}, log)
	if err != nil {
		_ = repository.Close()
		return nil, fmt.Errorf("error creating client services: %w", err)
	}

	return newApp(repository, services, tui.New(services, buildInfo, log), log), nil
}

func newApp(repository store.Repository, services *service.Services, ui UI, log *logger.Logger) *App {
	return &App{
		repository: repository,
		services:   services,
		ui:         ui,
		logger:     log,
	}
}

// Run resumes the persisted session or asks the user to sign in, then runs
// the main screen. A logout starts the cycle again; quitting ends it.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	for {
		session, ok, err := a.services.CredentialService.CurrentSession(ctx)
		if err != nil {
			return fmt.Errorf("error restoring session: %w", err)
		}

		if ok {
			a.logger.Info().Str("func", "*App.Run").Str("email", session.Email).Msg("session resumed")
		} else {
			session, err = a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("error during sign in: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("error in main screen: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("func", "*App.Run").Msg("logged out")
	}
}

func (a *App) Close() error {
	return a.repository.Close()
}
