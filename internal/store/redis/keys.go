package redis

const (
	// KeyBookings is the key holding the whole booking collection as one
	// JSON document, mirroring the file backend's single-file layout.
	KeyBookings = "bookingd:bookings"
)
