package domain

import (
	"slices"
	"time"
)

// ScheduleEntry is an externally owned schedule item. The core only reads it.
type ScheduleEntry struct {
	ID    string
	Label string
	// Start and End are "HH:MM" wall-clock times. End is optional.
	Start string
	End   string
	// Date is the specific calendar day, if any.
	Date *time.Time
	// Weekdays is the recurring weekday set, used when Date is nil.
	Weekdays           []time.Weekday
	PreparationMinutes *int
}

// OccursOn reports whether the entry applies to the given day. An entry
// with neither a date nor a weekday set applies every day.
func (e ScheduleEntry) OccursOn(day time.Time) bool {
	if e.Date != nil {
		y1, m1, d1 := e.Date.Date()
		y2, m2, d2 := day.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	if len(e.Weekdays) == 0 {
		return true
	}
	return slices.Contains(e.Weekdays, day.Weekday())
}
