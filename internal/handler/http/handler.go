package http

import (
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves the blog API routes.
type Handler struct {
	services      *service.Services
	userValidator validators.Validator

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	publicDataDelay    time.Duration
	requestTimeout     time.Duration
	corsAllowedOrigins []string

	now    func() time.Time
	logger *logger.Logger
}

// NewHandler creates a Handler. gatherer backs the /metrics endpoint and is
// normally the registry m was registered with.
func NewHandler(
	services *service.Services,
	userValidator validators.Validator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		userValidator:      userValidator,
		metrics:            m,
		gatherer:           gatherer,
		publicDataDelay:    cfg.App.PublicDataDelay,
		requestTimeout:     cfg.Server.RequestTimeout,
		corsAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		now:                time.Now,
		logger:             logger,
	}
}
