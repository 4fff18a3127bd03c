package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type authorizationService struct{}

// NewAuthorizationService returns the role gate. It is stateless and
// serves principals from both identity strategies through one code path.
func NewAuthorizationService() AuthorizationService {
	return authorizationService{}
}

// Authorize returns nil iff requiredRole is in principal.Roles, else ErrForbidden.
func (authorizationService) Authorize(ctx context.Context, principal models.Principal, requiredRole string) error {
	if principal.HasRole(requiredRole) {
		return nil
	}

	logger.FromContext(ctx).Info().
		Str("principal", principal.ID).
		Str("required_role", requiredRole).
		Strs("roles", principal.Roles.List()).
		Msg("access denied")
	return ErrForbidden
}
