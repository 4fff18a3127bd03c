// Package handler aggregates the transport handlers of the service.
package handler

import (
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/handler/http"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.Server.
func NewHandlers(
	services *service.Services,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	userValidator, err := validators.NewUserValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating user validator: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, userValidator, m, gatherer, cfg, logger),
	}, nil
}
