package service

import (
	"context"

	"github.com/MKhiriev/extconfig/models"
)

// ConfigMerger loads external property sources into the host configuration.
type ConfigMerger interface {
	// OnConfigurationRead runs the relative-file, absolute-file and URL
	// passes once, in that order, merging every successfully decoded source
	// into the configuration store. It never fails: per-source problems are
	// logged and recorded in the returned report.
	OnConfigurationRead(ctx context.Context) models.Report

	ReportSource
}

// ReportSource exposes the report of the most recent merge run.
type ReportSource interface {
	LastReport() (models.Report, bool)
}

// ConfigurationService is the read-only view of the merged configuration.
type ConfigurationService interface {
	Get(ctx context.Context, key string) (string, bool)
	All(ctx context.Context) map[string]string
	LastReport(ctx context.Context) (models.Report, bool)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
