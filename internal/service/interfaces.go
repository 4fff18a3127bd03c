package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// AuthService issues and verifies signed credentials.
type AuthService interface {
	// Login issues a credential for username. Only the configured demo
	// subject is accepted; any other name yields ErrInvalidCredentials.
	Login(ctx context.Context, username string) (models.Token, error)

	// ParseToken verifies a compact token. The Principal of a valid token is
	// available through Claims.Principal.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IdentityService resolves the principal named by the X-User-ID header.
type IdentityService interface {
	Authenticate(ctx context.Context, userID string) (models.Principal, error)
}

// AuthorizationService decides whether a principal holds a role.
type AuthorizationService interface {
	Authorize(ctx context.Context, principal models.Principal, requiredRole string) error
}

// ProduceFunc computes a response on a cache miss.
type ProduceFunc func(ctx context.Context) (models.CachedResponse, error)

// CacheService memoizes responses by key.
type CacheService interface {
	// Serve returns the cached response for key, or runs produce and stores
	// its successful result. hit reports whether produce was skipped.
	Serve(ctx context.Context, key string, produce ProduceFunc) (resp models.CachedResponse, hit bool, err error)

	// Len returns the number of cached entries.
	Len() int
}
