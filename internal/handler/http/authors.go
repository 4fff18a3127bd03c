package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) error {
	utils.WriteJSON(w, models.AuthorsResponse{Authors: []models.Author{}}, http.StatusOK)
	return nil
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, models.AuthorResponse{Author: models.Author{ID: id}}, http.StatusOK)
	return nil
}
