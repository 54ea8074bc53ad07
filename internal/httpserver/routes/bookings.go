package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/httpserver/handlers"
	"github.com/mcsclean/bookingd/internal/httpserver/mw"
)

func init() { Register(registerBookings) }

func registerBookings(r chi.Router, d deps.Deps) {
	r.Get("/bookings", handlers.ListBookings(d))

	// Submissions carry a per-IP token bucket: a stuck form retry loop
	// must not flood the store.
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.RateBurst,
		RefillPerMin: d.RateRefillPerMin,
		TrustProxy:   d.TrustProxy,
	})).Post("/bookings", handlers.CreateBooking(d))
}
