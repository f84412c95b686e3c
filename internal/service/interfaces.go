package service

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService owns accounts and the single active session.
// Every mutation is persisted before it returns.
type CredentialService interface {
	Register(ctx context.Context, profile models.UserProfile, rawPassword string) (models.Session, error)
	Login(ctx context.Context, email, rawPassword string) (models.Session, error)
	UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (models.Session, error)
	ResetPassword(ctx context.Context, email, newRawPassword string) error
	ChangePassword(ctx context.Context, email, oldRawPassword, newRawPassword string) error
	Logout(ctx context.Context) error

	// CurrentSession returns the persisted session, if any.
	CurrentSession(ctx context.Context) (models.Session, bool, error)
}

// Orchestrator runs analysis and registry requests for the signed-in user,
// keeps the view state and the bounded history.
type Orchestrator interface {
	Analyze(ctx context.Context, session models.Session, request models.AnalysisRequest) (models.AnalysisRecord, error)
	FetchRegistry(ctx context.Context, session models.Session) ([]models.RegistryEntry, error)

	// Reset returns the view to idle and drops every in-flight request.
	Reset()
	State() models.ViewState

	History(ctx context.Context) ([]models.AnalysisRecord, error)
	ClearHistory(ctx context.Context) error
	SelectHistory(ctx context.Context, id string) (models.AnalysisRecord, error)
}

type PreferencesService interface {
	Preferences(ctx context.Context) (models.Preferences, error)
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
	ToggleTheme(ctx context.Context) (models.Theme, error)
	// SetAPIKey stores the generator key override. An empty key clears it.
	SetAPIKey(ctx context.Context, apiKey string) error
}

type TokenService interface {
	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService describes the running server: its version and the
// generator models behind each verdict.
type AppInfoService interface {
	GetServiceInfo(ctx context.Context) models.ServiceInfo
}
