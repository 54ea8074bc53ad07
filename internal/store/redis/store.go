package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcsclean/bookingd/internal/domain"
)

// Store persists the booking collection as a single JSON value in Redis.
//
// The whole-collection load/save contract is kept on purpose: reads and
// writes stay interchangeable with the file backend, and the admission
// path's read-check-write sequence sees one consistent document.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed booking store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Load reads the entire booking collection. A missing key is a fresh
// deployment and yields an empty collection.
func (s *Store) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, KeyBookings).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}
	return bookings, nil
}

// Save replaces the entire booking collection. Bookings are kept
// indefinitely, so no TTL is set.
func (s *Store) Save(ctx context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	if err := s.client.Set(ctx, KeyBookings, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}
