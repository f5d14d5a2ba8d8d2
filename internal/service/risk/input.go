package risk

import (
	"time"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// AnalyzeInput holds the candidate entry and the caller's snapshot of the
// account's other entries.
type AnalyzeInput struct {
	Candidate domain.ScheduleEntry
	Existing  []domain.ScheduleEntry
	// Date is the day to analyze. Zero means the candidate's date, or today.
	Date time.Time
}

// Validate validates the analyze input.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	if i.Candidate.ID == "" {
		errs = append(errs, domain.FieldError{Field: "candidate.id", Message: "required"})
	}
	if _, ok := parseClock(i.Candidate.Start); !ok {
		errs = append(errs, domain.FieldError{Field: "candidate.start", Message: "must be HH:MM"})
	}
	if i.Candidate.End != "" {
		if _, ok := parseClock(i.Candidate.End); !ok {
			errs = append(errs, domain.FieldError{Field: "candidate.end", Message: "must be HH:MM"})
		}
	}
	if p := i.Candidate.PreparationMinutes; p != nil && *p < 0 {
		errs = append(errs, domain.FieldError{Field: "candidate.preparation_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AnalyzeInput) day(now time.Time) time.Time {
	switch {
	case !i.Date.IsZero():
		return truncateDay(i.Date)
	case i.Candidate.Date != nil:
		return truncateDay(*i.Candidate.Date)
	default:
		return truncateDay(now)
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
