package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mcsclean/bookingd/internal/booking"
	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/logger"
)

type createBookingResponse struct {
	OK      bool           `json:"ok"`
	Booking domain.Booking `json:"booking"`
}

type listBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// CreateBooking admits a booking submission.
func CreateBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req booking.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		b, err := d.Booking.Admit(r.Context(), req)
		if err != nil {
			if ae, ok := booking.AsAdmission(err); ok {
				status := http.StatusBadRequest
				if ae.Code == booking.CodeSlotFull {
					// Distinct status so clients know to re-poll availability.
					status = http.StatusConflict
				}
				writeError(w, status, ae.Message)
				return
			}
			d.Logger.Error("booking admission failed",
				logger.String("service_id", req.ServiceID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		writeJSON(w, http.StatusOK, createBookingResponse{OK: true, Booking: b})
	}
}

// ListBookings returns bookings ascending by start, optionally filtered by
// ?date=YYYY-MM-DD.
func ListBookings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := d.Booking.ListByDate(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			d.Logger.Error("booking listing failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		if bookings == nil {
			bookings = []domain.Booking{}
		}
		writeJSON(w, http.StatusOK, listBookingsResponse{Bookings: bookings})
	}
}
