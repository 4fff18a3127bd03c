package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

// identityService turns an X-User-ID header value into a Principal.
// The value is trusted as is; no format validation is performed.
type identityService struct {
	identityRepository store.IdentityRepository

	logger *logger.Logger
}

func NewIdentityService(identityRepository store.IdentityRepository, logger *logger.Logger) IdentityService {
	return &identityService{
		identityRepository: identityRepository,
		logger:             logger,
	}
}

// Authenticate returns ErrMissingIdentity for an empty userID; otherwise the
// principal resolved by the identity repository.
func (s *identityService) Authenticate(ctx context.Context, userID string) (models.Principal, error) {
	if userID == "" {
		return models.Principal{}, ErrMissingIdentity
	}

	principal, err := s.identityRepository.FindIdentity(ctx, userID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("resolving identity %q: %w", userID, err)
	}

	return principal, nil
}
