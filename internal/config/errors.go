package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidServerConfigs indicates an empty listen address or a negative
	// timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache backend or a
	// non-positive size for the bounded backend.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAppConfigs indicates invalid token lifetime or demo login.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
