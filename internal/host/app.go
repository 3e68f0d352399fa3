package host

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/extconfig/internal/adapter"
	"github.com/MKhiriev/extconfig/internal/config"
	"github.com/MKhiriev/extconfig/internal/handler"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/server"
	"github.com/MKhiriev/extconfig/internal/service"
	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/internal/utils"
)

var _ Host = (*App)(nil)

type App struct {
	cfg           *config.StructuredConfig
	configuration store.ConfigurationStore
	files         store.PropertiesFileStorage
	services      *service.Services

	// stdout receives the merged map when no output path is configured.
	stdout io.Writer

	logger *logger.Logger
}

// NewApp loads the base properties named by cfg.App.PropertiesPath and wires
// the merger over the default sources: bundled resources from
// cfg.App.ResourceDir, the local filesystem and HTTP.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	sources := service.MergerSources{
		Resources: adapter.NewResourceOpener(os.DirFS(cfg.App.ResourceDir)),
		Files:     adapter.NewFileOpener(),
		URLs:      adapter.NewURLOpener(utils.NewHTTPClient(cfg.Adapter.RequestTimeout)),
	}

	return newApp(ctx, cfg, sources, logger)
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, sources service.MergerSources, logger *logger.Logger) (*App, error) {
	files := store.NewPropertiesFileStorage()

	base := map[string]string{}
	if cfg.App.PropertiesPath != "" {
		loaded, err := files.LoadFromFile(ctx, cfg.App.PropertiesPath)
		if err != nil {
			return nil, fmt.Errorf("error loading base properties: %w", err)
		}
		base = loaded
		logger.Info().
			Str("path", cfg.App.PropertiesPath).
			Int("keys", len(base)).
			Msg("base properties loaded")
	}
	configuration := store.NewPropertiesFrom(base)

	services, err := service.NewServices(configuration, sources, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &App{
		cfg:           cfg,
		configuration: configuration,
		files:         files,
		services:      services,
		stdout:        os.Stdout,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	report := a.services.ConfigMerger.OnConfigurationRead(ctx)
	for _, item := range report.Problems() {
		a.logger.Debug().
			Str("pass", string(item.Pass)).
			Str("location", item.Location).
			Str("outcome", string(item.Outcome)).
			Msg("source skipped")
	}

	if err := a.emit(ctx); err != nil {
		return err
	}

	if a.cfg.Server.HTTPAddress == "" {
		return nil
	}

	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	a.logger.Info().Str("address", srv.Addr()).Msg("serving merged configuration")
	srv.RunServer()
	return nil
}

// emit writes the merged map to the output file, or to stdout.
func (a *App) emit(ctx context.Context) error {
	values := a.configuration.Snapshot()

	if a.cfg.App.OutputPath == "" {
		if err := a.files.WriteTo(ctx, a.stdout, values); err != nil {
			return fmt.Errorf("error writing merged properties: %w", err)
		}
		return nil
	}

	if err := a.files.SaveToFile(ctx, a.cfg.App.OutputPath, values); err != nil {
		return fmt.Errorf("error saving merged properties: %w", err)
	}
	a.logger.Info().Str("path", a.cfg.App.OutputPath).Msg("merged properties saved")

	return nil
}
