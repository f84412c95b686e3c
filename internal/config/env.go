// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// apiKeyFallbackVars are consulted, in order, when GENERATOR_API_KEY is unset.
var apiKeyFallbackVars = []string{"GEMINI_API_KEY", "API_KEY"}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Generator.APIKey == "" {
		for _, name := range apiKeyFallbackVars {
			if v := os.Getenv(name); v != "" {
				cfg.Generator.APIKey = v
				break
			}
		}
	}

	return nil
}
