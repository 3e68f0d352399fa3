package service

import (
	"fmt"

	"github.com/MKhiriev/extconfig/internal/config"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/internal/utils"
)

type Services struct {
	ConfigMerger         ConfigMerger
	ConfigurationService ConfigurationService
	AppInfoService       AppInfoService
}

func NewServices(configuration store.ConfigurationStore, sources MergerSources, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	merger := NewConfigMerger(configuration, cfg.App.DeploymentID, sources, utils.NewUUIDGenerator(), logger)

	return &Services{
		ConfigMerger:         merger,
		ConfigurationService: NewConfigurationService(configuration, merger, logger),
		AppInfoService:       appInfoService,
	}, nil
}
