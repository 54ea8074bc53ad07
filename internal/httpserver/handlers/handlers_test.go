package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mcsclean/bookingd/internal/booking"
	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/logger"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	bookings []domain.Booking
}

func (m *memStore) Load(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *memStore) Save(_ context.Context, bookings []domain.Booking) error {
	m.bookings = make([]domain.Booking, len(bookings))
	copy(m.bookings, bookings)
	return nil
}

func testDeps(st *memStore) deps.Deps {
	log := logger.New("error", false)
	catalog := domain.NewCatalog([]domain.Service{
		{ID: "room_clean", Name: "Room cleaning", DurationMinutes: 60},
		{ID: "kitchen_clean", Name: "Kitchen cleaning", DurationMinutes: 60},
	})
	svc := booking.New(booking.Options{
		Store:    st,
		Catalog:  catalog,
		Logger:   log,
		Hours:    domain.Hours{Open: 9, Close: 18},
		Capacity: 2,
		Location: time.UTC,
	})
	return deps.Deps{
		Logger:    log,
		StartTime: time.Now(),
		Booking:   svc,
		Catalog:   catalog,
	}
}

func confirmedAt(start time.Time) domain.Booking {
	return domain.Booking{
		ID:        domain.NewBookingID(),
		ServiceID: "room_clean",
		Start:     start,
		End:       start.Add(time.Hour),
		Status:    domain.StatusConfirmed,
	}
}

func TestServicesHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Services(testDeps(&memStore{}))(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Services []domain.Service `json:"services"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(resp.Services) != 2 || resp.Services[0].ID != "room_clean" {
		t.Errorf("services = %+v", resp.Services)
	}
}

func TestAvailabilityHandlerMissingDate(t *testing.T) {
	rec := httptest.NewRecorder()
	Availability(testDeps(&memStore{}))(rec, httptest.NewRequest(http.MethodGet, "/availability", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if resp["error"] == "" {
		t.Error("missing error message in response")
	}
}

func TestAvailabilityHandler(t *testing.T) {
	d := testDeps(&memStore{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2024-06-01&serviceId=room_clean", nil)
	Availability(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Date      string            `json:"date"`
		ServiceID string            `json:"serviceId"`
		Slots     []domain.Interval `json:"slots"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if resp.Date != "2024-06-01" || resp.ServiceID != "room_clean" {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.Slots) != 9 {
		t.Errorf("got %d slots, want 9", len(resp.Slots))
	}
}

func TestCreateBookingHandler(t *testing.T) {
	st := &memStore{}
	d := testDeps(st)

	body := `{"serviceId":"room_clean","name":"Alice","building":"A","start":"2024-06-01T09:00:00.000Z"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	CreateBooking(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK      bool           `json:"ok"`
		Booking domain.Booking `json:"booking"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !resp.OK {
		t.Error("ok = false, want true")
	}
	if !resp.Booking.End.Equal(resp.Booking.Start.Add(time.Hour)) {
		t.Errorf("end = %v, want start + 1h", resp.Booking.End)
	}
	if len(st.bookings) != 1 {
		t.Errorf("store holds %d bookings, want 1", len(st.bookings))
	}
}

func TestCreateBookingHandlerStatuses(t *testing.T) {
	nine := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		existing   []domain.Booking
		body       string
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       `{"serviceId":"room_clean","start":"2024-06-01T09:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown service",
			body:       `{"serviceId":"car_wash","name":"Alice","start":"2024-06-01T09:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slot full",
			existing:   []domain.Booking{confirmedAt(nine), confirmedAt(nine)},
			body:       `{"serviceId":"room_clean","name":"Alice","start":"2024-06-01T09:00:00Z"}`,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &memStore{bookings: tt.existing}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			CreateBooking(testDeps(st))(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if len(st.bookings) != len(tt.existing) {
				t.Error("rejected booking must not persist")
			}
		})
	}
}

func TestListBookingsHandler(t *testing.T) {
	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	st := &memStore{bookings: []domain.Booking{
		confirmedAt(june1.Add(14 * time.Hour)),
		confirmedAt(june1.Add(9 * time.Hour)),
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?date=2024-06-01", nil)
	ListBookings(testDeps(st))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Bookings []domain.Booking `json:"bookings"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(resp.Bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(resp.Bookings))
	}
	if resp.Bookings[0].Start.After(resp.Bookings[1].Start) {
		t.Error("bookings not sorted ascending by start")
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(testDeps(&memStore{}))(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !resp.OK {
		t.Error("ok = false, want true")
	}
}
