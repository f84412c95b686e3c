// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// Keys of the key-value layout. They match the browser storage keys of the
// original web client so exported data stays recognizable.
const (
	KeyAccounts = "fraudguard_users_db_v1"
	KeySession  = "fraudguard_active_session_v1"
	KeyHistory  = "fraudguard_analysis_history"
	KeyTheme    = "fraudguard_theme"
	KeyAPIKey   = "fraudguard_custom_api_key"
)

// kvRepository implements [Repository] on top of any [KeyValue]. Lists and
// the session are stored as JSON, theme and API key as raw strings.
type kvRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [Repository] backed by kv.
func NewKeyValueRepository(kv KeyValue, logger *logger.Logger) Repository {
	logger.Debug().Msg("creating key-value repository")
	return &kvRepository{kv: kv, logger: logger}
}

func (r *kvRepository) LoadAccounts(ctx context.Context) ([]models.UserAccount, error) {
	accounts := make([]models.UserAccount, 0)
	if err := r.getJSON(ctx, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *kvRepository) SaveAccounts(ctx context.Context, accounts []models.UserAccount) error {
	if accounts == nil {
		accounts = []models.UserAccount{}
	}
	return r.setJSON(ctx, KeyAccounts, accounts)
}

func (r *kvRepository) LoadSession(ctx context.Context) (*models.Session, error) {
	var session *models.Session
	if err := r.getJSON(ctx, KeySession, &session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *kvRepository) SaveSession(ctx context.Context, session *models.Session) error {
	if session == nil {
		if err := r.kv.Delete(ctx, KeySession); err != nil {
			return fmt.Errorf("error clearing session: %w", err)
		}
		return nil
	}
	return r.setJSON(ctx, KeySession, session)
}

func (r *kvRepository) LoadHistory(ctx context.Context) ([]models.AnalysisRecord, error) {
	history := make([]models.AnalysisRecord, 0)
	if err := r.getJSON(ctx, KeyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *kvRepository) SaveHistory(ctx context.Context, records []models.AnalysisRecord) error {
	if records == nil {
		records = []models.AnalysisRecord{}
	}
	return r.setJSON(ctx, KeyHistory, records)
}

func (r *kvRepository) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	prefs := models.Preferences{Theme: models.DefaultTheme}

	theme, err := r.getString(ctx, KeyTheme)
	if err != nil {
		return models.Preferences{}, err
	}
	if t := models.Theme(theme); t.Valid() {
		prefs.Theme = t
	}

	if prefs.APIKey, err = r.getString(ctx, KeyAPIKey); err != nil {
		return models.Preferences{}, err
	}

	return prefs, nil
}

func (r *kvRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	if err := r.kv.Set(ctx, KeyTheme, []byte(prefs.Theme)); err != nil {
		return fmt.Errorf("error saving theme: %w", err)
	}

	if prefs.APIKey == "" {
		if err := r.kv.Delete(ctx, KeyAPIKey); err != nil {
			return fmt.Errorf("error clearing api key: %w", err)
		}
		return nil
	}

	if err := r.kv.Set(ctx, KeyAPIKey, []byte(prefs.APIKey)); err != nil {
		return fmt.Errorf("error saving api key: %w", err)
	}
	return nil
}

func (r *kvRepository) Close() error {
	return r.kv.Close()
}

// getJSON decodes the value at key into target. An absent key leaves target
// untouched.
func (r *kvRepository) getJSON(ctx context.Context, key string, target any) error {
	data, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", key, err)
	}

	if err = json.Unmarshal(data, target); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*kvRepository.getJSON").Str("key", key).Msg("stored value is not valid JSON")
		return fmt.Errorf("%w: %s: %w", ErrCorruptedData, key, err)
	}
	return nil
}

func (r *kvRepository) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}

	if err = r.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	return nil
}

func (r *kvRepository) getString(ctx context.Context, key string) (string, error) {
	data, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", key, err)
	}
	return string(data), nil
}
