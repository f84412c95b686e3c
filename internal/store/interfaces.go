package store

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists the full list of registered accounts.
// Writes replace the stored list.
type AccountRepository interface {
	LoadAccounts(ctx context.Context) ([]models.UserAccount, error)
	SaveAccounts(ctx context.Context, accounts []models.UserAccount) error
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	// LoadSession returns nil when no session is stored.
	LoadSession(ctx context.Context) (*models.Session, error)
	// SaveSession stores session, or clears the stored one when session is nil.
	SaveSession(ctx context.Context, session *models.Session) error
}

// HistoryRepository persists analysis history, newest first.
type HistoryRepository interface {
	LoadHistory(ctx context.Context) ([]models.AnalysisRecord, error)
	SaveHistory(ctx context.Context, records []models.AnalysisRecord) error
}

// PreferencesRepository persists theme and API key override.
type PreferencesRepository interface {
	LoadPreferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}

// Repository aggregates every repository served by one storage backend.
type Repository interface {
	AccountRepository
	SessionRepository
	HistoryRepository
	PreferencesRepository

	Close() error
}

// KeyValue is a string-keyed byte store. It backs [Repository] for the
// memory, file and redis drivers.
type KeyValue interface {
	// Get returns ErrKeyNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
