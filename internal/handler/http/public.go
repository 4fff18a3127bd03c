package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) error {
	utils.WriteText(w, "Hello Server!", http.StatusOK)
	return nil
}

// publicData simulates expensive work before answering. It sits behind the
// cache stage, so the delay is only paid on a miss.
func (h *Handler) publicData(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	log.Debug().Dur("delay", h.publicDataDelay).Msg("generating public data")

	timer := time.NewTimer(h.publicDataDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	utils.WriteJSON(w, models.PublicDataResponse{
		Message:     "This is public data that can be cached",
		GeneratedAt: h.now().UTC(),
	}, http.StatusOK)
	return nil
}
