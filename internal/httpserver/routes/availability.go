package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/httpserver/handlers"
)

func init() { Register(registerAvailability) }

func registerAvailability(r chi.Router, d deps.Deps) {
	r.Get("/availability", handlers.Availability(d))
}
