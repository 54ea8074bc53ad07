package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/mcsclean/bookingd/internal/domain"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "international format", phone: "+4917612345678", want: true},
		{name: "without plus", phone: "4917612345678", want: true},
		{name: "too short", phone: "+49123", want: false},
		{name: "leading zero", phone: "017612345678", want: false},
		{name: "letters", phone: "+49abc5678901", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPhone(tt.phone); got != tt.want {
				t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestConfirmationText(t *testing.T) {
	b := domain.Booking{
		ID:          "bk_test",
		ServiceName: "Room cleaning",
		Building:    "Main Hall",
		Flat:        "12",
		Room:        "B",
		Start:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	got := ConfirmationText(b, time.UTC)

	for _, want := range []string{"Room cleaning", "Main Hall", "Flat 12", "Room B", "Ref bk_test", "09:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("ConfirmationText() = %q, missing %q", got, want)
		}
	}
}

func TestConfirmationTextOmitsEmptyLocation(t *testing.T) {
	b := domain.Booking{
		ID:          "bk_test",
		ServiceName: "Kitchen cleaning",
		Building:    "Dorm A",
		Start:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	got := ConfirmationText(b, time.UTC)
	if strings.Contains(got, "Flat") || strings.Contains(got, "Room ") {
		t.Errorf("ConfirmationText() = %q, should not mention empty flat/room", got)
	}
}

func TestConfirmationTextUsesLocalTime(t *testing.T) {
	b := domain.Booking{
		ID:          "bk_test",
		ServiceName: "Room cleaning",
		Start:       time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC),
	}

	loc := time.FixedZone("UTC+3", 3*60*60)
	got := ConfirmationText(b, loc)
	if !strings.Contains(got, "09:00") {
		t.Errorf("ConfirmationText() = %q, want local 09:00", got)
	}
}
