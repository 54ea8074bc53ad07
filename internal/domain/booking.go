package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Booking status values. There is no cancellation endpoint; cancelled
// records may still appear in the store and must be excluded from
// capacity counts.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a persisted appointment.
//
// Invariant: End = Start + service duration, both UTC-normalized.
// Contact and location fields are optional and default to "".
type Booking struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Notes       string    `json:"notes"`
	Building    string    `json:"building"`
	Flat        string    `json:"flat"`
	Room        string    `json:"room"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Interval returns the booking's occupied time span.
func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// Active reports whether the booking counts toward slot capacity.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled
}

// NewBookingID generates a fresh booking identifier.
func NewBookingID() string {
	return "bk_" + uuid.NewString()
}

// SortByStart orders bookings ascending by start instant, with ID as a
// tie-breaker so reloaded collections re-sort deterministically.
func SortByStart(bookings []Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].Start.Before(bookings[j].Start)
	})
}
