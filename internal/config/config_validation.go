// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.DemoLogin == "" || cfg.App.PublicDataDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendLRU:
		if cfg.Cache.Size <= 0 {
			return fmt.Errorf("%w: lru size must be positive, got %d", ErrInvalidCacheConfigs, cfg.Cache.Size)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidCacheConfigs, cfg.Cache.Backend)
	}

	return nil
}
