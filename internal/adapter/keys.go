package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/internal/store"
)

type keyProvider struct {
	prefs      store.PreferencesRepository
	configured string
}

// NewKeyProvider returns a [KeyProvider] that prefers the API key saved in
// the user preferences and falls back to the configured one. prefs may be nil.
func NewKeyProvider(prefs store.PreferencesRepository, configured string) KeyProvider {
	return &keyProvider{prefs: prefs, configured: strings.TrimSpace(configured)}
}

func (k *keyProvider) APIKey(ctx context.Context) (string, error) {
	if k.prefs != nil {
		prefs, err := k.prefs.LoadPreferences(ctx)
		if err != nil {
			return "", fmt.Errorf("load api key override: %w", err)
		}
		if key := strings.TrimSpace(prefs.APIKey); key != "" {
			return key, nil
		}
	}

	if k.configured != "" {
		return k.configured, nil
	}

	return "", ErrMissingAPIKey
}
