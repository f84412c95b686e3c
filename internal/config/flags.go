package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-storage-driver storage driver (memory, file, redis, sqlite, postgres)
//	-d storage DSN
//	-password-encoding password encoding (argon2id, legacy)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-generator generator backend (genai, rest)
//	-api-key generator API key
//	-generator-url REST generator base URL
//	-analysis-model model used for analysis
//	-registry-model model used for registry snapshots
//	-generator-timeout generator request timeout
//	-log-level log level
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var storageDriver, storageDSN string
	var passwordEncoding string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var allowedOrigins string
	var generatorBackend, apiKey, generatorURL string
	var analysisModel, registryModel string
	var generatorTimeout time.Duration
	var logLevel, logFile string

	fs := flag.NewFlagSet("fraudguard", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Storage driver (memory, file, redis, sqlite, postgres)")
	fs.StringVar(&storageDSN, "d", "", "Storage DSN")
	fs.StringVar(&passwordEncoding, "password-encoding", "", "Password encoding (argon2id, legacy)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&generatorBackend, "generator", "", "Generator backend (genai, rest)")
	fs.StringVar(&apiKey, "api-key", "", "Generator API key")
	fs.StringVar(&generatorURL, "generator-url", "", "REST generator base URL")
	fs.StringVar(&analysisModel, "analysis-model", "", "Model used for content analysis")
	fs.StringVar(&registryModel, "registry-model", "", "Model used for registry snapshots")
	fs.DurationVar(&generatorTimeout, "generator-timeout", 0, "Generator request timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordEncoding: passwordEncoding,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			LogLevel:         logLevel,
			LogFile:          logFile,
		},
		Generator: Generator{
			Backend:        generatorBackend,
			APIKey:         apiKey,
			BaseURL:        generatorURL,
			AnalysisModel:  analysisModel,
			RegistryModel:  registryModel,
			RequestTimeout: generatorTimeout,
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    storageDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
