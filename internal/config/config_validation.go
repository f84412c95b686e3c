// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	knownPasswordEncodings = []string{PasswordEncodingArgon2id, PasswordEncodingLegacy}
	knownGeneratorBackends = []string{GeneratorBackendGenAI, GeneratorBackendREST}
	knownStorageDrivers    = []string{
		StorageDriverMemory,
		StorageDriverFile,
		StorageDriverRedis,
		StorageDriverSQLite,
		StorageDriverPostgres,
	}
)

// validate checks the invariants shared by the server and the client once
// all sources are merged and defaults applied.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(knownPasswordEncodings, cfg.App.PasswordEncoding) {
		return fmt.Errorf("%w: unknown password encoding %q", ErrInvalidAppConfigs, cfg.App.PasswordEncoding)
	}

	if !slices.Contains(knownGeneratorBackends, cfg.Generator.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidGeneratorConfigs, cfg.Generator.Backend)
	}
	if cfg.Generator.AnalysisModel == "" || cfg.Generator.RegistryModel == "" {
		return fmt.Errorf("%w: models are required", ErrInvalidGeneratorConfigs)
	}
	if cfg.Generator.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidGeneratorConfigs)
	}

	if !slices.Contains(knownStorageDrivers, cfg.Storage.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != StorageDriverMemory && cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

// validateServer checks the settings only the HTTP API needs.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Driver == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Generator.Backend == "" {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}
