package handler

import (
	"github.com/MKhiriev/extconfig/internal/config"
	"github.com/MKhiriev/extconfig/internal/handler/http"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The HTTP view
// is the only transport; without an address there is nothing to serve.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
