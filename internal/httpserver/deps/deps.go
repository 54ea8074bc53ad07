package deps

import (
	"time"

	"github.com/mcsclean/bookingd/internal/booking"
	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/logger"
)

type Deps struct {
	Logger           logger.Logger
	StartTime        time.Time
	Version          string
	Commit           string
	BuildDate        string
	GoVersion        string
	Booking          *booking.Service // availability, admission, listing
	Catalog          *domain.Catalog  // static service catalog
	StaticDir        string           // web front end directory (empty = API only)
	TrustProxy       bool             // true if running behind a trusted reverse proxy
	RateBurst        int              // token bucket burst for POST /bookings
	RateRefillPerMin int              // token refill per IP per minute
}
