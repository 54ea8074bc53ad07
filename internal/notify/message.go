package notify

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mcsclean/bookingd/internal/domain"
)

// E.164-ish: optional +, no leading zero, 7 to 15 digits.
var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// ValidPhone reports whether the number is deliverable as an SMS target.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ConfirmationText builds the SMS body for an admitted booking. The start
// instant is rendered in the business's local timezone.
func ConfirmationText(b domain.Booking, loc *time.Location) string {
	when := b.Start.In(loc).Format("Mon, 02 Jan 2006 15:04")

	where := b.Building
	if b.Flat != "" {
		where += " Flat " + b.Flat
	}
	if b.Room != "" {
		where += " Room " + b.Room
	}

	return fmt.Sprintf("MCS Cleaning: %s booked for %s in %s. Ref %s.",
		b.ServiceName, when, where, b.ID)
}
