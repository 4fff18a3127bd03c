package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// Placeholder profile returned for every header identity.
const (
	DemoDisplayName = "Test User"
	RoleAdmin       = "admin"
	RoleEditor      = "editor"
)

// demoIdentityRepository is a placeholder [IdentityRepository]. It trusts any
// user id and grants every caller the same demo profile with roles
// {admin, editor}. A real implementation would look the user up in an
// identity store; substituting one does not touch the request pipeline.
type demoIdentityRepository struct {
	displayName string
	roles       []string
}

// NewDemoIdentityRepository constructs the placeholder identity repository.
func NewDemoIdentityRepository(logger *logger.Logger) IdentityRepository {
	logger.Warn().Msg("using placeholder identity repository: every X-User-ID gets roles admin, editor")
	return &demoIdentityRepository{
		displayName: DemoDisplayName,
		roles:       []string{RoleAdmin, RoleEditor},
	}
}

func (r *demoIdentityRepository) FindIdentity(ctx context.Context, userID string) (models.Principal, error) {
	if userID == "" {
		return models.Principal{}, ErrEmptyUserID
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Msg("resolved placeholder identity")

	return models.Principal{
		ID:          userID,
		DisplayName: r.displayName,
		Roles:       models.NewRoles(r.roles...),
	}, nil
}
