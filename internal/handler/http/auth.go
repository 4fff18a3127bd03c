package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// login issues a token for the demo subject. The token is returned in the
// body and, as with the other auth endpoints, in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		return respondError(w, r, fmt.Errorf("%w: %w", validators.ErrMalformedPayload, err))
	}

	token, err := h.services.AuthService.Login(ctx, req.Username)
	if err != nil {
		return respondError(w, r, err)
	}

	log.Debug().Str("sub", token.Claims.Subject).Str("jti", token.Claims.ID).Msg("token issued")

	w.Header().Set(authorizationHeader, fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
	return nil
}

// protected returns the claims of the verified token.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) error {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return errors.New("no token claims in request context")
	}

	utils.WriteJSON(w, models.ProtectedResponse{
		Message: "You have accessed a protected route!",
		Claims:  claims,
	}, http.StatusOK)
	return nil
}
