package store

import (
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// Storages groups every storage dependency of the service layer.
type Storages struct {
	ResponseCache      ResponseCache
	IdentityRepository IdentityRepository
}

// NewStorages builds the storages selected by cfg.
func NewStorages(cfg config.Cache, logger *logger.Logger) (*Storages, error) {
	cache, err := newResponseCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ResponseCache:      cache,
		IdentityRepository: NewDemoIdentityRepository(logger),
	}, nil
}

func newResponseCache(cfg config.Cache, logger *logger.Logger) (ResponseCache, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		return NewMemoryResponseCache(logger), nil
	case config.CacheBackendLRU:
		return NewLRUResponseCache(cfg.Size, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, cfg.Backend)
	}
}
