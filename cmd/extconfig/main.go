package main

import (
	"context"
	"os"

	"github.com/MKhiriev/extconfig/internal/config"
	"github.com/MKhiriev/extconfig/internal/host"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	// stdout may carry the merged properties
	buildInfo.Print(os.Stderr)

	log := logger.NewLogger("extconfig")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	app, err := host.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init host error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("host run error")
	}
}
