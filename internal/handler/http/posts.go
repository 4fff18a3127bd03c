package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) error {
	utils.WriteJSON(w, models.PostsResponse{Posts: []models.Post{}}, http.StatusOK)
	return nil
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) error {
	utils.WriteJSON(w, models.MessageResponse{Message: "Post created"}, http.StatusCreated)
	return nil
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, models.PostResponse{Post: models.Post{ID: id}}, http.StatusOK)
	return nil
}

// pathID parses the {id} URL parameter. A malformed id is an unhandled
// error and ends up at the error boundary.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidPathID, raw, err)
	}
	return id, nil
}
