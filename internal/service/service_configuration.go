package service

import (
	"context"

	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/models"
)

type configurationService struct {
	configuration store.ConfigurationStore
	reports       ReportSource

	logger *logger.Logger
}

func NewConfigurationService(configuration store.ConfigurationStore, reports ReportSource, logger *logger.Logger) ConfigurationService {
	return &configurationService{
		configuration: configuration,
		reports:       reports,
		logger:        logger,
	}
}

func (s *configurationService) Get(ctx context.Context, key string) (string, bool) {
	return s.configuration.Lookup(key)
}

func (s *configurationService) All(ctx context.Context) map[string]string {
	return s.configuration.Snapshot()
}

func (s *configurationService) LastReport(ctx context.Context) (models.Report, bool) {
	return s.reports.LastReport()
}
