package service

import "errors"

// Identity errors. All of them are answered with 401 Unauthorized.
var (
	// ErrMissingIdentity is returned when a request carries no X-User-ID
	// header. Absence is never replaced by a default identity.
	ErrMissingIdentity = errors.New("missing X-User-ID header")

	// ErrMissingCredential is returned when a token-protected request has no
	// usable "Authorization: Bearer" header.
	ErrMissingCredential = errors.New("missing bearer token")

	// ErrInvalidCredentials is returned by login for any subject other than
	// the configured demo subject.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignature is returned for tokens whose signature does not
	// verify, or which are otherwise malformed.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrTokenExpired is returned for tokens verified at or after their expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// ErrForbidden is returned when a principal lacks the required role (403).
var ErrForbidden = errors.New("forbidden")

// ErrTokenCreationFailed wraps failures to sign a new token.
var ErrTokenCreationFailed = errors.New("token creation failed")
