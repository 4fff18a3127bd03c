package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizationService_Authorize(t *testing.T) {
	tokenPrincipal := (&models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		Role:             "admin",
	}).Principal()

	tests := []struct {
		name      string
		principal models.Principal
		role      string
		wantErr   error
	}{
		{
			name:      "header identity with admin",
			principal: models.Principal{ID: "1", Roles: models.NewRoles("admin", "editor")},
			role:      "admin",
		},
		{
			name:      "header identity without admin",
			principal: models.Principal{ID: "1", Roles: models.NewRoles("editor")},
			role:      "admin",
			wantErr:   ErrForbidden,
		},
		{
			name:      "token identity with admin",
			principal: tokenPrincipal,
			role:      "admin",
		},
		{
			name:      "token identity missing role",
			principal: tokenPrincipal,
			role:      "editor",
			wantErr:   ErrForbidden,
		},
		{
			name:      "no roles",
			principal: models.Principal{ID: "1"},
			role:      "admin",
			wantErr:   ErrForbidden,
		},
	}

	svc := NewAuthorizationService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(context.Background(), tt.principal, tt.role)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestAuthorizationService_Deterministic verifies the decision depends only on
// its inputs.
func TestAuthorizationService_Deterministic(t *testing.T) {
	svc := NewAuthorizationService()
	p := models.Principal{ID: "1", Roles: models.NewRoles("editor")}

	for i := 0; i < 10; i++ {
		assert.ErrorIs(t, svc.Authorize(context.Background(), p, "admin"), ErrForbidden)
		assert.NoError(t, svc.Authorize(context.Background(), p, "editor"))
	}
}
