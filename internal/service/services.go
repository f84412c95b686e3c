package service

import (
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/crypto"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
)

type Services struct {
	CredentialService  CredentialService
	Orchestrator       Orchestrator
	PreferencesService PreferencesService
	TokenService       TokenService
	AppInfoService     AppInfoService
}

func NewServices(repository store.Repository, gateway gateway.Gateway, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	encoder, err := crypto.NewPasswordEncoder(cfg.App.PasswordEncoding)
	if err != nil {
		return nil, fmt.Errorf("error creating password encoder: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CredentialService:  NewCredentialService(repository, repository, encoder, logger),
		Orchestrator:       NewOrchestrator(gateway, repository, logger),
		PreferencesService: NewPreferencesService(repository, logger),
		TokenService:       NewTokenService(cfg.App, logger),
		AppInfoService:     appInfoService,
	}, nil
}
