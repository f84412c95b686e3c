// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// responseMIMEType is requested from every backend so the model answers with
// a JSON document matching the supplied schema.
const responseMIMEType = "application/json"

// modelSet picks the configured model for a generation kind.
type modelSet struct {
	analysis string
	registry string
}

func newModelSet(cfg config.Generator) modelSet {
	return modelSet{analysis: cfg.AnalysisModel, registry: cfg.RegistryModel}
}

func (m modelSet) forKind(kind models.GenerationKind) string {
	if kind == models.GenerationRegistry {
		return m.registry
	}
	return m.analysis
}

// NewGenerator builds the [Generator] selected by cfg.Backend.
func NewGenerator(cfg config.Generator, keys KeyProvider, logger *logger.Logger) (Generator, error) {
	switch cfg.Backend {
	case config.GeneratorBackendGenAI, "":
		return NewGenAIGenerator(cfg, keys, logger), nil
	case config.GeneratorBackendREST:
		return NewRESTGenerator(cfg, keys, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
