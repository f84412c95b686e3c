package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the terminal client. It
// drops the HTTP server settings the client never reads.
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Generator configures the generation backend the client calls directly.
	Generator Generator
	// Storage selects the local persistence backend.
	Storage Storage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:       cfg.App,
		Generator: cfg.Generator,
		Storage:   cfg.Storage,
	}

	return clientCfg, clientCfg.validate()
}
