// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
	"golang.org/x/sync/singleflight"
)

// cacheService implements the memoization algorithm on top of a
// [store.ResponseCache]:
//
//  1. a hit returns a copy of the stored entry and produce is not called;
//  2. a miss calls produce;
//  3. a successful 2xx result is stored as an independent copy;
//  4. an error is returned as is and nothing is stored.
//
// By default two concurrent misses on one key both run produce. With
// coalesce enabled, concurrent misses on a key share a single produce call.
type cacheService struct {
	cache    store.ResponseCache
	coalesce bool
	group    singleflight.Group
	metrics  *metrics.Metrics
	now      func() time.Time

	logger *logger.Logger
}

func NewCacheService(cache store.ResponseCache, cfg config.Cache, m *metrics.Metrics, logger *logger.Logger) CacheService {
	return &cacheService{
		cache:    cache,
		coalesce: cfg.Coalesce,
		metrics:  m,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *cacheService) Serve(ctx context.Context, key string, produce ProduceFunc) (models.CachedResponse, bool, error) {
	log := logger.FromContext(ctx)

	if cached, ok := s.cache.Lookup(ctx, key); ok {
		s.metrics.CacheHits.Inc()
		log.Debug().Str("cache_key", key).Msg("cache hit")
		return cached, true, nil
	}

	s.metrics.CacheMisses.Inc()
	log.Debug().Str("cache_key", key).Msg("cache miss")

	if !s.coalesce {
		resp, err := s.produceAndStore(ctx, key, produce)
		return resp, false, err
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.produceAndStore(ctx, key, produce)
	})
	if err != nil {
		return models.CachedResponse{}, false, err
	}
	if shared {
		log.Debug().Str("cache_key", key).Msg("coalesced with in-flight request")
	}

	// each waiter gets its own copy of the shared result
	return v.(models.CachedResponse).Clone(), false, nil
}

func (s *cacheService) produceAndStore(ctx context.Context, key string, produce ProduceFunc) (models.CachedResponse, error) {
	resp, err := produce(ctx)
	if err != nil {
		return models.CachedResponse{}, err
	}

	if !cacheable(resp.Status) {
		return resp, nil
	}

	resp.StoredAt = s.now()
	if err := s.cache.Store(ctx, key, resp); err != nil {
		// the response is still served, it just won't be reused
		logger.FromContext(ctx).Err(err).Str("cache_key", key).Msg("storing response failed")
		return resp, nil
	}
	s.metrics.CacheStores.Inc()

	return resp, nil
}

func (s *cacheService) Len() int {
	return s.cache.Len()
}

func cacheable(status int) bool {
	return status >= 200 && status < 300
}
