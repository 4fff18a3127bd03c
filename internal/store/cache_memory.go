// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// memoryResponseCache is the default [ResponseCache]: a plain map guarded by
// a RWMutex.
//
// It has no TTL, no size bound and never evicts. Entries live for the whole
// lifetime of the process; this growth is intentional and observable through
// the cache stats worker.
type memoryResponseCache struct {
	mu      sync.RWMutex
	entries map[string]models.CachedResponse
}

// NewMemoryResponseCache constructs an empty unbounded [ResponseCache].
func NewMemoryResponseCache(logger *logger.Logger) ResponseCache {
	logger.Debug().Msg("creating in-memory response cache")
	return &memoryResponseCache{
		entries: make(map[string]models.CachedResponse),
	}
}

func (c *memoryResponseCache) Lookup(_ context.Context, key string) (models.CachedResponse, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return models.CachedResponse{}, false
	}
	return entry.Clone(), true
}

func (c *memoryResponseCache) Store(_ context.Context, key string, resp models.CachedResponse) error {
	if key == "" {
		return ErrEmptyCacheKey
	}

	entry := resp.Clone()

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return nil
}

func (c *memoryResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
