package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/handler"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/server"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("fraudguard-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Released() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("fraudguard-server", cfg.App.LogLevel)
	log.Debug().Str("storage", cfg.Storage.Driver).Str("generator", cfg.Generator.Backend).Msg("received configs")

	ctx := log.WithContext(context.Background())

	repository, err := store.NewRepository(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repository")
	}
	defer repository.Close()

	generator, err := adapter.NewGenerator(cfg.Generator, adapter.NewKeyProvider(repository, cfg.Generator.APIKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating generator")
	}

	services, err := service.NewServices(repository, gateway.NewGateway(generator, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
