package handlers

import (
	"net/http"

	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/httpserver/deps"
)

type servicesResponse struct {
	Services []domain.Service `json:"services"`
}

// Services returns the static catalog.
func Services(d deps.Deps) http.HandlerFunc {
	catalog := d.Catalog
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, servicesResponse{Services: catalog.All()})
	}
}
