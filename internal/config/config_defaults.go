package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultPasswordEncoding = PasswordEncodingArgon2id
	DefaultTokenIssuer      = "go-fraud-guard"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultVersion          = "dev"

	DefaultGeneratorBackend = GeneratorBackendGenAI
	DefaultGeneratorBaseURL = "https://generativelanguage.googleapis.com"
	DefaultAnalysisModel    = "gemini-3-pro-preview"
	DefaultRegistryModel    = "gemini-3-flash-preview"

	DefaultStorageDriver = StorageDriverFile
	DefaultStorageFile   = "fraudguard.json"

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 2 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordEncoding == "" {
		cfg.App.PasswordEncoding = DefaultPasswordEncoding
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Generator.Backend == "" {
		cfg.Generator.Backend = DefaultGeneratorBackend
	}
	if cfg.Generator.BaseURL == "" {
		cfg.Generator.BaseURL = DefaultGeneratorBaseURL
	}
	if cfg.Generator.AnalysisModel == "" {
		cfg.Generator.AnalysisModel = DefaultAnalysisModel
	}
	if cfg.Generator.RegistryModel == "" {
		cfg.Generator.RegistryModel = DefaultRegistryModel
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if cfg.Storage.Driver == StorageDriverFile && cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultStorageFile
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}
