// Package utils provides general-purpose helpers shared by the transport and
// service layers: typed context keys for the request principal, JWT signing
// and verification, JSON response writing, id generation and a preconfigured
// HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the identity stage stores the
// authenticated [models.Principal].
var PrincipalCtxKey = contextKey("principal")

// ClaimsCtxKey is the key under which the token identity stage stores the
// verified [models.Claims].
var ClaimsCtxKey = contextKey("claims")

// UserCtxKey is the key under which a validated POST /users payload is
// stored.
var UserCtxKey = contextKey("user")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the principal from the context.
//
// ok is false when no identity stage ran for the request, which means no
// principal exists for it.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithUser returns a copy of ctx carrying a validated user payload.
func WithUser(ctx context.Context, user models.CreateUserRequest) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the validated user payload from the context.
func GetUserFromContext(ctx context.Context) (models.CreateUserRequest, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.CreateUserRequest)
	return user, ok
}
