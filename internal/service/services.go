package service

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/store"
)

type Services struct {
	AuthService          AuthService
	IdentityService      IdentityService
	AuthorizationService AuthorizationService
	CacheService         CacheService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(cfg.App, logger),
		IdentityService:      NewIdentityService(storages.IdentityRepository, logger),
		AuthorizationService: NewAuthorizationService(),
		CacheService:         NewCacheService(storages.ResponseCache, cfg.Cache, m, logger),
	}
}
