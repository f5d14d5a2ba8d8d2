package risk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

const minutesPerDay = 24 * 60

// parseClock converts "HH:MM" (24h) to minutes since midnight.
func parseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock is the inverse of parseClock. Values past midnight render as 24:00.
func formatClock(minutes int) string {
	minutes = min(max(minutes, 0), minutesPerDay)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// interval is an entry resolved to a half-open [start, end) minute range.
type interval struct {
	entry domain.ScheduleEntry
	start int
	end   int
}

func (iv interval) duration() int { return iv.end - iv.start }

func (iv interval) overlaps(other interval) bool {
	return iv.start < other.end && iv.end > other.start
}

// resolve turns an entry into an interval. A missing or invalid end means
// start plus defaultDuration; an end before the start is clamped to midnight.
func resolve(e domain.ScheduleEntry, defaultDuration int) (interval, bool) {
	start, ok := parseClock(e.Start)
	if !ok {
		return interval{}, false
	}

	end, ok := parseClock(e.End)
	switch {
	case !ok:
		end = min(start+defaultDuration, minutesPerDay)
	case end < start:
		end = minutesPerDay
	}

	return interval{entry: e, start: start, end: end}, true
}

// resolveEnd keeps an entry whose start is unusable but whose end parses, as
// an empty interval at its end. Only the preparation rule looks at these.
func resolveEnd(e domain.ScheduleEntry) (interval, bool) {
	if _, ok := parseClock(e.Start); ok {
		return interval{}, false
	}
	end, ok := parseClock(e.End)
	if !ok {
		return interval{}, false
	}
	return interval{entry: e, start: end, end: end}, true
}
