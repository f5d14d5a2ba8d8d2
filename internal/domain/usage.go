package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageCounter is the per-account, per-calendar-day AI call counter.
// TotalCalls is always >= the sum of any tracked Breakdown entries.
type UsageCounter struct {
	AccountID  uuid.UUID
	Day        time.Time
	TotalCalls int
	Breakdown  map[string]int
	UpdatedAt  time.Time
}

// CallDecision is the outcome of a quota check.
type CallDecision struct {
	Allowed   bool
	Unlimited bool
	// Remaining is the number of calls left today after this decision.
	// It is meaningless when Unlimited is true.
	Remaining int
	// Degraded is set when the usage store could not be consulted and the
	// call was allowed without being counted.
	Degraded bool
}

// UsageDay returns the UTC calendar day that now belongs to.
func UsageDay(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
