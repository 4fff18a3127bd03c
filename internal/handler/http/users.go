package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

const maxBodyBytes = 1 << 20

// withValidatedUser decodes the request body against the create-user schema.
// Invalid payloads are answered with 400 and the list of violations, and next
// is not called.
func (h *Handler) withValidatedUser(next pipeline.HandlerFunc) pipeline.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			return respondError(w, r, fmt.Errorf("%w: %w", validators.ErrMalformedPayload, err))
		}

		var user models.CreateUserRequest
		if err := h.userValidator.Decode(r.Context(), payload, &user); err != nil {
			return respondError(w, r, err)
		}

		return next(w, r.WithContext(utils.WithUser(r.Context(), user)))
	}
}

// createUser echoes the validated user with 201.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return ErrNoValidatedUser
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("creating user")
	utils.WriteJSON(w, user, http.StatusCreated)
	return nil
}
