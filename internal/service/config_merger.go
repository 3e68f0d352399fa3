// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/extconfig/internal/adapter"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/models"
	"github.com/rs/zerolog"
)

// MergerSources bundles the openers used by each pass.
type MergerSources struct {
	// Resources opens relative filenames when no absolute path prefix is
	// configured.
	Resources adapter.SourceOpener

	// Files opens prefixed relative filenames and absolute paths.
	Files adapter.SourceOpener

	// URLs fetches http(s) locations.
	URLs adapter.SourceOpener
}

type idGenerator interface {
	Generate() string
}

type configMerger struct {
	configuration store.ConfigurationStore
	deploymentID  string
	sources       MergerSources
	ids           idGenerator

	mu   sync.RWMutex
	last *models.Report

	logger *logger.Logger
}

// NewConfigMerger returns a [ConfigMerger] writing into configuration.
// deploymentID seeds the default filename and selects which "%"-scoped keys
// apply; it may be empty.
func NewConfigMerger(configuration store.ConfigurationStore, deploymentID string, sources MergerSources, ids idGenerator, logger *logger.Logger) ConfigMerger {
	return &configMerger{
		configuration: configuration,
		deploymentID:  deploymentID,
		sources:       sources,
		ids:           ids,
		logger:        logger,
	}
}

func (m *configMerger) OnConfigurationRead(ctx context.Context) models.Report {
	report := models.Report{
		RunID:        m.ids.Generate(),
		DeploymentID: m.deploymentID,
		Items:        make([]models.ItemResult, 0),
	}

	log := m.logger.With().
		Str("run_id", report.RunID).
		Str("deployment_id", m.deploymentID).
		Logger()

	m.relativeFilePass(ctx, &report, log)
	m.absoluteFilePass(ctx, &report, log)
	m.urlPass(ctx, &report, log)

	log.Info().
		Int("sources", len(report.Items)).
		Int("loaded", report.LoadedCount()).
		Int("problems", len(report.Problems())).
		Int("keys", m.configuration.Len()).
		Msg("external configuration merged")

	m.mu.Lock()
	m.last = &report
	m.mu.Unlock()

	return report
}

func (m *configMerger) LastReport() (models.Report, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.last == nil {
		return models.Report{}, false
	}
	return *m.last, true
}

// relativeFilePass loads externalConfig.fileName. An absent key falls back
// to "/<deploymentID>.properties"; an empty one disables the pass.
func (m *configMerger) relativeFilePass(ctx context.Context, report *models.Report, log zerolog.Logger) {
	raw, ok := m.configuration.Lookup(models.ExternalConfigFileName)
	if !ok {
		raw = "/" + m.deploymentID + ".properties"
	}

	locations := splitLocations(raw)
	if len(locations) == 0 {
		log.Debug().Str("key", models.ExternalConfigFileName).Msg("no relative files configured")
		return
	}

	prefix := m.configuration.Get(models.ExternalConfigFileAbsolutePath)

	for _, location := range locations {
		switch {
		case isURL(location):
			report.Add(m.load(ctx, log, models.RelativeFile, location, location, m.sources.URLs))
		case prefix != "":
			resolved := prefix + string(os.PathSeparator) + trimLeadingSeparator(location)
			report.Add(m.load(ctx, log, models.RelativeFile, location, resolved, m.sources.Files))
		default:
			report.Add(m.load(ctx, log, models.RelativeFile, location, location, m.sources.Resources))
		}
	}
}

func (m *configMerger) absoluteFilePass(ctx context.Context, report *models.Report, log zerolog.Logger) {
	locations := splitLocations(m.configuration.Get(models.ExternalConfigFileNameAbsolute))
	if len(locations) == 0 {
		log.Debug().Str("key", models.ExternalConfigFileNameAbsolute).Msg("no absolute files configured")
		return
	}

	for _, location := range locations {
		report.Add(m.load(ctx, log, models.AbsoluteFile, location, location, m.sources.Files))
	}
}

func (m *configMerger) urlPass(ctx context.Context, report *models.Report, log zerolog.Logger) {
	locations := splitLocations(m.configuration.Get(models.ExternalConfigURL))
	if len(locations) == 0 {
		log.Debug().Str("key", models.ExternalConfigURL).Msg("no urls configured")
		return
	}

	for _, location := range locations {
		if !isURL(location) {
			result := models.ItemResult{Pass: models.URL, Location: location}
			itemLog := log.With().Str("pass", string(models.URL)).Str("location", location).Logger()
			report.Add(m.reject(itemLog, result, fmt.Errorf("%w: %q", ErrNotURL, location)))
			continue
		}

		report.Add(m.load(ctx, log, models.URL, location, location, m.sources.URLs))
	}
}

// load opens, decodes and merges a single source. The stream is closed
// before load returns, whatever the outcome.
func (m *configMerger) load(ctx context.Context, log zerolog.Logger, pass models.SourceKind, location, resolved string, opener adapter.SourceOpener) models.ItemResult {
	result := models.ItemResult{Pass: pass, Location: location, Resolved: resolved}

	log = log.With().
		Str("pass", string(pass)).
		Str("location", location).
		Str("resolved", resolved).
		Logger()
	log.Info().Msg("loading configuration")

	rc, err := opener.Open(ctx, resolved)
	if err != nil {
		return m.reject(log, result, err)
	}
	if rc == nil {
		return m.reject(log, result, ErrNoStream)
	}

	values, err := store.DecodeProperties(rc)
	if closeErr := rc.Close(); closeErr != nil {
		log.Debug().Err(closeErr).Msg("error closing source")
	}
	if err != nil {
		return m.reject(log, result, err)
	}

	result.Merged, result.Dropped = mergeProperties(m.configuration, values, m.deploymentID)
	result.Outcome = models.Loaded

	log.Info().
		Int("merged", result.Merged).
		Int("dropped", result.Dropped).
		Msg("configuration loaded")

	return result
}

// reject classifies err into an outcome and logs it at the matching level:
// warn for missing sources, error for everything else.
func (m *configMerger) reject(log zerolog.Logger, result models.ItemResult, err error) models.ItemResult {
	result.Error = err.Error()

	switch {
	case errors.Is(err, adapter.ErrSourceNotFound), errors.Is(err, ErrNoStream):
		result.Outcome = models.NotFound
		log.Warn().Err(err).Msg("configuration source not found, skipping")
	case errors.Is(err, ErrNotURL):
		result.Outcome = models.Rejected
		log.Error().Err(err).Msg("configuration source rejected, skipping")
	default:
		result.Outcome = models.Failed
		log.Error().Err(err).Msg("unable to load configuration, skipping")
	}

	return result
}

func trimLeadingSeparator(name string) string {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, string(os.PathSeparator)) {
		return name[1:]
	}
	return name
}
