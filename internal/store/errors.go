package store

import "errors"

// Sentinel errors returned by storage constructors and repositories.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownCacheBackend is returned by [NewStorages] when the configured
	// cache backend is neither "memory" nor "lru".
	ErrUnknownCacheBackend = errors.New("unknown response cache backend")

	// ErrEmptyCacheKey is returned when a response is stored under an empty key.
	ErrEmptyCacheKey = errors.New("empty cache key")

	// ErrEmptyUserID is returned by [IdentityRepository] lookups with an empty id.
	ErrEmptyUserID = errors.New("empty user id")
)
