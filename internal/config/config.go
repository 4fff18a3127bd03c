// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-blog-api service. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing parameters, the
	// demo login subject and the public-data simulated workload.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout and CORS settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Cache selects and tunes the response cache backend.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// It is required and has no default.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DemoLogin is the only username for which /login issues a token.
	// Env: APP_DEMO_LOGIN
	DemoLogin string `env:"DEMO_LOGIN"`

	// PublicDataDelay is the simulated work performed by /api/public-data
	// on a cache miss.
	// Env: APP_PUBLIC_DATA_DELAY
	PublicDataDelay time.Duration `env:"PUBLIC_DATA_DELAY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported in the startup log.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins enables CORS for the listed origins when non-empty.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Cache holds response cache settings.
type Cache struct {
	// Backend is either "memory" (unbounded, default) or "lru" (bounded).
	// Env: CACHE_BACKEND
	Backend string `env:"BACKEND"`

	// Size is the maximum number of entries kept by the "lru" backend.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`

	// Coalesce enables per-key single-flight on cache misses.
	// Env: CACHE_COALESCE
	Coalesce bool `env:"COALESCE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CacheReportInterval is how often the cache size is published.
	// Zero disables the worker.
	// Env: WORKERS_CACHE_REPORT_INTERVAL
	CacheReportInterval time.Duration `env:"CACHE_REPORT_INTERVAL"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendLRU    = "lru"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
