package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) error {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return ErrNoPrincipal
	}

	utils.WriteJSON(w, models.DashboardResponse{
		Message: fmt.Sprintf("Welcome to the admin dashboard, %s!", principal.DisplayName),
		UserID:  principal.ID,
	}, http.StatusOK)
	return nil
}
