package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// ResponseCache is the process-wide store of memoized HTTP responses.
//
// Implementations must copy the value on Store and on Lookup so callers never
// share a body buffer or header map with the stored entry. A key maps to at
// most one entry; a later Store under the same key replaces the earlier one.
type ResponseCache interface {
	// Lookup returns a copy of the entry stored under key.
	Lookup(ctx context.Context, key string) (models.CachedResponse, bool)

	// Store saves a copy of resp under key.
	Store(ctx context.Context, key string, resp models.CachedResponse) error

	// Len returns the number of stored entries.
	Len() int
}

// IdentityRepository resolves the profile and roles of a user identified by
// the X-User-ID header.
type IdentityRepository interface {
	FindIdentity(ctx context.Context, userID string) (models.Principal, error)
}
