package store

import (
	"context"

	"github.com/mcsclean/bookingd/internal/domain"
)

// Store persists the booking collection with whole-collection semantics:
// callers load everything, mutate in memory, and save everything back.
// No partial updates.
//
// Implementations: file (JSON document on disk) and redis (single key
// holding the JSON document).
type Store interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}
