// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Password encodings understood by the credential store.
const (
	PasswordEncodingArgon2id = "argon2id"
	PasswordEncodingLegacy   = "legacy"
)

// Generator backends.
const (
	GeneratorBackendGenAI = "genai"
	GeneratorBackendREST  = "rest"
)

// Storage drivers.
const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverRedis    = "redis"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// go-fraud-guard application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as password encoding,
	// token parameters, logging and the application version.
	App App `envPrefix:"APP_"`

	// Generator holds the settings of the structured-generation backend
	// that classifies submitted content.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Storage selects and configures the persistence backend for accounts,
	// session, history and preferences.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings for the
	// HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordEncoding selects how account passwords are stored:
	// "argon2id" (salted one-way hash) or "legacy" (reversible base64).
	// Env: APP_PASSWORD_ENCODING
	PasswordEncoding string `env:"PASSWORD_ENCODING"`

	// TokenSignKey is the secret key used to sign and verify session JWTs
	// issued by the HTTP API.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the terminal client writes its logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Generator configures the external structured-generation capability.
type Generator struct {
	// Backend is "genai" (Google Gen AI SDK) or "rest" (plain REST calls).
	// Env: GENERATOR_BACKEND
	Backend string `env:"BACKEND"`

	// APIKey is the default credential. A key saved in the user preferences
	// takes precedence over it.
	// Env: GENERATOR_API_KEY (falls back to GEMINI_API_KEY, then API_KEY)
	APIKey string `env:"API_KEY"`

	// BaseURL is the REST endpoint root used by the "rest" backend.
	// Env: GENERATOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AnalysisModel is the model used for content analysis.
	// Env: GENERATOR_ANALYSIS_MODEL
	AnalysisModel string `env:"ANALYSIS_MODEL"`

	// RegistryModel is the model used for registry snapshots.
	// Env: GENERATOR_REGISTRY_MODEL
	RegistryModel string `env:"REGISTRY_MODEL"`

	// RequestTimeout bounds a single generation call. Zero means no bound.
	// Env: GENERATOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects the persistence backend.
type Storage struct {
	// Driver is one of memory, file, redis, sqlite, postgres.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is interpreted by the driver: a file path for file and sqlite,
	// a redis:// URL for redis and a postgres:// URL for postgres.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validateServer(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}
