package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// requireRole lets the request through only when the principal set by the
// identity stage holds role; otherwise it answers 403.
func (h *Handler) requireRole(role string) pipeline.Stage {
	return pipeline.Stage{
		Kind: pipeline.KindAuthorization,
		Name: "require-" + role,
		Wrap: func(next pipeline.HandlerFunc) pipeline.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				ctx := r.Context()

				principal, ok := utils.GetPrincipalFromContext(ctx)
				if !ok {
					return ErrNoPrincipal
				}

				if err := h.services.AuthorizationService.Authorize(ctx, principal, role); err != nil {
					return respondError(w, r, err)
				}

				return next(w, r)
			}
		},
	}
}
