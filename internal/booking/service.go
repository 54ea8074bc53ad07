package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/logger"
	"github.com/mcsclean/bookingd/internal/notify"
	"github.com/mcsclean/bookingd/internal/store"
)

// DefaultCapacityPerSlot is the number of cleaners available per slot.
const DefaultCapacityPerSlot = 2

// Request carries a booking submission. Contact and location fields are
// optional and default to "".
type Request struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	Building  string `json:"building"`
	Flat      string `json:"flat"`
	Room      string `json:"room"`
	Start     string `json:"start"`
}

// Options configures a booking Service.
type Options struct {
	Store      store.Store
	Catalog    *domain.Catalog
	Logger     logger.Logger
	Hours      domain.Hours
	Capacity   int
	Location   *time.Location     // business-local calendar for slot generation
	Dispatcher *notify.Dispatcher // optional, nil disables confirmations
	Now        func() time.Time   // optional, for tests
}

// Service implements availability queries and booking admission over an
// injected store.
//
// A single mutex serializes the load-check-append-save sequence: two
// concurrent admissions can no longer both pass the capacity check and
// both write, so capacity cannot be exceeded within one process.
type Service struct {
	mu         sync.Mutex
	store      store.Store
	catalog    *domain.Catalog
	logger     logger.Logger
	hours      domain.Hours
	capacity   int
	loc        *time.Location
	dispatcher *notify.Dispatcher
	now        func() time.Time
}

// New creates a booking service. Zero-valued options fall back to the
// documented defaults.
func New(opts Options) *Service {
	if opts.Hours.Open == 0 && opts.Hours.Close == 0 {
		opts.Hours = domain.Hours{Open: domain.DefaultOpenHour, Close: domain.DefaultCloseHour}
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacityPerSlot
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:      opts.Store,
		catalog:    opts.Catalog,
		logger:     opts.Logger,
		hours:      opts.Hours,
		capacity:   opts.Capacity,
		loc:        opts.Location,
		dispatcher: opts.Dispatcher,
		now:        opts.Now,
	}
}

// Capacity returns the shared per-slot capacity.
func (s *Service) Capacity() int { return s.capacity }

// Availability computes the open slots for a date and service. An unknown
// serviceID falls back to the first catalog entry. The returned service
// tells the caller which duration was used.
func (s *Service) Availability(ctx context.Context, date, serviceID string) (domain.Service, []domain.Interval, error) {
	svc, ok := s.catalog.Lookup(serviceID)
	if !ok {
		svc = s.catalog.First()
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), s.loc)
	if err != nil {
		return svc, nil, errInvalidTime("Invalid date (YYYY-MM-DD)")
	}

	bookings, err := s.store.Load(ctx)
	if err != nil {
		return svc, nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	slots := domain.GenerateSlots(day.Year(), day.Month(), day.Day(), s.hours, svc.DurationMinutes, s.loc)
	return svc, domain.AvailableSlots(slots, bookings, s.capacity), nil
}

// Admit validates a booking request, re-checks capacity against the
// current store state, persists the booking, and enqueues a confirmation.
//
// The capacity check deliberately does not trust any prior availability
// query: state may have changed between query and submission.
func (s *Service) Admit(ctx context.Context, req Request) (domain.Booking, error) {
	var zero domain.Booking

	switch {
	case strings.TrimSpace(req.ServiceID) == "":
		return zero, errMissingField("serviceId")
	case strings.TrimSpace(req.Name) == "":
		return zero, errMissingField("name")
	case strings.TrimSpace(req.Start) == "":
		return zero, errMissingField("start (ISO datetime)")
	}

	svc, ok := s.catalog.Lookup(req.ServiceID)
	if !ok {
		return zero, errInvalidService()
	}

	start, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Start))
	if err != nil {
		return zero, errInvalidTime("Invalid start time")
	}
	start = start.UTC()
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Load(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load bookings: %w", err)
	}

	requested := domain.Interval{Start: start, End: end}
	if domain.OverlapCount(requested, bookings) >= s.capacity {
		return zero, errSlotFull()
	}

	b := domain.Booking{
		ID:          domain.NewBookingID(),
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       req.Notes,
		Building:    req.Building,
		Flat:        req.Flat,
		Room:        req.Room,
		Start:       start,
		End:         end,
		Status:      domain.StatusConfirmed,
		CreatedAt:   s.now().UTC(),
	}

	bookings = append(bookings, b)
	if err := s.store.Save(ctx, bookings); err != nil {
		return zero, fmt.Errorf("failed to save bookings: %w", err)
	}

	s.logger.Info("booking admitted",
		logger.String("booking_id", b.ID),
		logger.String("service_id", b.ServiceID),
		logger.Time("start", b.Start))

	// Fire-and-forget: the booking is already persisted, delivery outcome
	// never reaches the caller.
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(b)
	}

	return b, nil
}

// ListByDate returns bookings ascending by start, optionally filtered to a
// single UTC calendar date (YYYY-MM-DD, empty = all).
func (s *Service) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	bookings, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	domain.SortByStart(bookings)

	date = strings.TrimSpace(date)
	if date == "" {
		return bookings, nil
	}

	filtered := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Start.UTC().Format("2006-01-02") == date {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
