package domain

import "time"

// Interval represents a half-open time span [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two half-open intervals share at least one
// instant. Touching intervals (a.End == b.Start) do not overlap.
//
// This is the single comparison primitive used by both the availability
// engine and the admission check.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
