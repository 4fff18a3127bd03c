package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is checked in order; the first sentinel err wraps wins.
var errorStatusMap = []errorStatus{
	{service.ErrMissingIdentity, http.StatusUnauthorized},
	{service.ErrMissingCredential, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidSignature, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{validators.ErrValidationFailed, http.StatusBadRequest},
	{validators.ErrMalformedPayload, http.StatusBadRequest},
}

// knownError returns the sentinel err wraps and its status.
func knownError(err error) (error, int, bool) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.err, e.status, true
		}
	}
	return nil, 0, false
}

func statusFromError(err error) int {
	if _, status, ok := knownError(err); ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError answers the request for errors with a known status and
// returns nil. Any other error is returned unchanged for the error boundary.
//
// The message is the sentinel's text, so wrapped causes never reach the
// client. Validation failures additionally list their violations.
func respondError(w http.ResponseWriter, r *http.Request, err error) error {
	target, status, ok := knownError(err)
	if !ok {
		return err
	}

	logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("request rejected")

	body := models.NewErrorResponse(target.Error())
	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		body.Errors = ve.Details
	}

	utils.WriteJSON(w, body, status)
	return nil
}
