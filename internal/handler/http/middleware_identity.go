// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

const (
	userIDHeader        = "X-User-ID"
	authorizationHeader = "Authorization"
)

// headerIdentityStage authenticates the caller from the X-User-ID header
// and stores the resulting principal in the request context. A missing
// header is answered with 401.
func (h *Handler) headerIdentityStage() pipeline.Stage {
	return pipeline.Stage{
		Kind: pipeline.KindIdentity,
		Name: "header-identity",
		Wrap: func(next pipeline.HandlerFunc) pipeline.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				ctx := r.Context()

				principal, err := h.services.IdentityService.Authenticate(ctx, r.Header.Get(userIDHeader))
				if err != nil {
					return respondError(w, r, err)
				}

				return next(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
			}
		},
	}
}

// bearerIdentityStage verifies the "Authorization: Bearer" credential.
// The token's claims and the principal derived from them are stored in the
// request context. Missing, malformed, forged and expired tokens are
// answered with 401.
func (h *Handler) bearerIdentityStage() pipeline.Stage {
	return pipeline.Stage{
		Kind: pipeline.KindIdentity,
		Name: "bearer-identity",
		Wrap: func(next pipeline.HandlerFunc) pipeline.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				ctx := r.Context()

				tokenString, err := utils.ParseBearerToken(r.Header.Get(authorizationHeader))
				if err != nil {
					return respondError(w, r, fmt.Errorf("%w: %w", service.ErrMissingCredential, err))
				}

				token, err := h.services.AuthService.ParseToken(ctx, tokenString)
				if err != nil {
					return respondError(w, r, err)
				}

				ctx = utils.WithClaims(ctx, token.Claims)
				ctx = utils.WithPrincipal(ctx, token.Claims.Principal())

				return next(w, r.WithContext(ctx))
			}
		},
	}
}
