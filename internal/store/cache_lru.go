// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// lruResponseCache is a bounded [ResponseCache] evicting the least recently
// used entry once size entries are held. It is opt-in (cache.backend=lru);
// eviction changes nothing about hit/miss semantics except that an evicted
// key misses again.
type lruResponseCache struct {
	entries *lru.Cache[string, models.CachedResponse]
}

// NewLRUResponseCache constructs a [ResponseCache] holding at most size entries.
func NewLRUResponseCache(size int, logger *logger.Logger) (ResponseCache, error) {
	entries, err := lru.New[string, models.CachedResponse](size)
	if err != nil {
		return nil, fmt.Errorf("create lru response cache: %w", err)
	}

	logger.Debug().Int("size", size).Msg("creating lru response cache")
	return &lruResponseCache{entries: entries}, nil
}

func (c *lruResponseCache) Lookup(_ context.Context, key string) (models.CachedResponse, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return models.CachedResponse{}, false
	}
	return entry.Clone(), true
}

func (c *lruResponseCache) Store(_ context.Context, key string, resp models.CachedResponse) error {
	if key == "" {
		return ErrEmptyCacheKey
	}

	c.entries.Add(key, resp.Clone())
	return nil
}

func (c *lruResponseCache) Len() int {
	return c.entries.Len()
}
