package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/models"
)

type preferencesService struct {
	mu sync.Mutex

	preferences store.PreferencesRepository

	logger *logger.Logger
}

func NewPreferencesService(preferences store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		preferences: preferences,
		logger:      logger,
	}
}

func (s *preferencesService) Preferences(ctx context.Context) (models.Preferences, error) {
	prefs, err := s.preferences.LoadPreferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("error loading preferences: %w", err)
	}
	if !prefs.Theme.Valid() {
		prefs.Theme = models.DefaultTheme
	}
	return prefs, nil
}

func (s *preferencesService) Theme(ctx context.Context) (models.Theme, error) {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return "", err
	}
	return prefs.Theme, nil
}

func (s *preferencesService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	return s.update(ctx, func(prefs *models.Preferences) { prefs.Theme = theme })
}

func (s *preferencesService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	var toggled models.Theme
	err := s.update(ctx, func(prefs *models.Preferences) {
		prefs.Theme = prefs.Theme.Toggle()
		toggled = prefs.Theme
	})
	if err != nil {
		return "", err
	}
	return toggled, nil
}

func (s *preferencesService) SetAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	err := s.update(ctx, func(prefs *models.Preferences) { prefs.APIKey = apiKey })
	if err == nil {
		logger.FromContext(ctx).Info().Bool("cleared", apiKey == "").Msg("api key override updated")
	}
	return err
}

func (s *preferencesService) update(ctx context.Context, mutate func(*models.Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.Preferences(ctx)
	if err != nil {
		return err
	}

	mutate(&prefs)

	if err = s.preferences.SavePreferences(ctx, prefs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.update").Msg("error saving preferences")
		return fmt.Errorf("error saving preferences: %w", err)
	}
	return nil
}
