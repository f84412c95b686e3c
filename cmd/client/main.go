package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fraud-guard/internal/client"
	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if buildInfo.Released() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	// The terminal belongs to the UI, so logs go to a file.
	log := logger.NewClientLogger("fraudguard-client", cfg.App.LogLevel, cfg.App.LogFile)

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "fraudguard: %v\n", err)
	}
}
