package domain

import "time"

// Operating-hours defaults for the cleaning crew.
const (
	DefaultOpenHour    = 9
	DefaultCloseHour   = 18
	DefaultSlotMinutes = 60
)

// Hours is the daily operating window. Open/Close are hours on the 24h
// clock; every slot must end at or before Close:00.
type Hours struct {
	Open  int
	Close int
}

// GenerateSlots produces the ordered bookable slots for a calendar day.
//
// The day is interpreted in loc; emitted intervals are UTC-normalized, so
// callers must not assume the wall-clock hour survives serialization across
// timezone boundaries. Slots step by slotMinutes from Open:00 and the last
// one that fits entirely before Close:00 is included; no partial slot is
// emitted.
func GenerateSlots(year int, month time.Month, day int, hours Hours, slotMinutes int, loc *time.Location) []Interval {
	if slotMinutes <= 0 || hours.Close <= hours.Open {
		return nil
	}

	open := time.Date(year, month, day, hours.Open, 0, 0, 0, loc)
	closing := time.Date(year, month, day, hours.Close, 0, 0, 0, loc)
	step := time.Duration(slotMinutes) * time.Minute

	var slots []Interval
	for t := open; !t.Add(step).After(closing); t = t.Add(step) {
		slots = append(slots, Interval{
			Start: t.UTC(),
			End:   t.Add(step).UTC(),
		})
	}
	return slots
}
