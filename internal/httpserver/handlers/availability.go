package handlers

import (
	"net/http"

	"github.com/mcsclean/bookingd/internal/booking"
	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/logger"
)

type availabilityResponse struct {
	Date      string            `json:"date"`
	ServiceID string            `json:"serviceId"`
	Slots     []domain.Interval `json:"slots"`
}

// Availability returns the open slots for a date and service.
func Availability(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, "Missing 'date' (YYYY-MM-DD)")
			return
		}

		svc, slots, err := d.Booking.Availability(r.Context(), date, r.URL.Query().Get("serviceId"))
		if err != nil {
			if ae, ok := booking.AsAdmission(err); ok {
				writeError(w, http.StatusBadRequest, ae.Message)
				return
			}
			d.Logger.Error("availability query failed",
				logger.String("date", date),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		if slots == nil {
			slots = []domain.Interval{}
		}
		writeJSON(w, http.StatusOK, availabilityResponse{
			Date:      date,
			ServiceID: svc.ID,
			Slots:     slots,
		})
	}
}
