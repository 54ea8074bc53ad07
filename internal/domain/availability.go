package domain

// OverlapCount returns the number of non-cancelled bookings whose interval
// overlaps iv.
func OverlapCount(iv Interval, bookings []Booking) int {
	n := 0
	for _, b := range bookings {
		if b.Active() && iv.Overlaps(b.Interval()) {
			n++
		}
	}
	return n
}

// AvailableSlots filters slots whose overlap count is strictly below
// capacity.
//
// Capacity is shared across all services: bookings for different services
// in the same hour compete for the same pool (the pool models the number
// of cleaners, not per-service lanes). O(slots x bookings) is fine at this
// scale.
func AvailableSlots(slots []Interval, bookings []Booking, capacity int) []Interval {
	available := make([]Interval, 0, len(slots))
	for _, slot := range slots {
		if OverlapCount(slot, bookings) < capacity {
			available = append(available, slot)
		}
	}
	return available
}
