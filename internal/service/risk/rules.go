package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

const (
	conflictSeverity    domain.Severity = 4
	preparationSeverity domain.Severity = 3
	overworkSeverity    domain.Severity = 3
)

// Rules evaluates a candidate schedule entry against the rest of its day.
// It holds no mutable state and is safe for concurrent use.
type Rules struct {
	highStakes         []string
	defaultPreparation int
	defaultDuration    int
	overloadThreshold  int
	reportAllConflicts bool
}

// NewRules builds Rules from configuration.
func NewRules(cfg config.RiskConfig) Rules {
	keywords := make([]string, 0, len(cfg.HighStakesKeywords))
	for _, k := range cfg.HighStakesKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return Rules{
		highStakes:         keywords,
		defaultPreparation: cfg.DefaultPreparationMinutes,
		defaultDuration:    cfg.DefaultDurationMinutes,
		overloadThreshold:  cfg.OverloadThresholdMinutes,
		reportAllConflicts: cfg.ReportAllConflicts,
	}
}

// Evaluate runs the conflict, preparation and overload rules independently
// and returns every alert they produce for day. Existing entries that do not
// occur on day or share the candidate's id are ignored. An existing entry
// with an unparsable start counts only as a preceding entry for the
// preparation rule, and only when its end parses. A candidate with an
// unparsable start yields no alerts.
func (r Rules) Evaluate(accountID uuid.UUID, candidate domain.ScheduleEntry, existing []domain.ScheduleEntry, day, now time.Time) []domain.RiskAlert {
	cand, ok := resolve(candidate, r.defaultDuration)
	if !ok {
		return nil
	}

	others := make([]interval, 0, len(existing))
	var endOnly []interval
	for _, e := range existing {
		if e.ID == candidate.ID || !e.OccursOn(day) {
			continue
		}
		if iv, ok := resolve(e, r.defaultDuration); ok {
			others = append(others, iv)
		} else if iv, ok := resolveEnd(e); ok {
			endOnly = append(endOnly, iv)
		}
	}

	var alerts []domain.RiskAlert
	build := func(payload domain.AlertPayload, title, message string, sev domain.Severity, related []string, action string) {
		alerts = append(alerts, domain.NewRiskAlert(accountID, payload, title, message, sev, related, &action, day, now))
	}

	for _, other := range r.conflicts(cand, others) {
		suggested := formatClock(other.end)
		build(
			domain.ConflictPayload{
				ConflictingEntryID: other.entry.ID,
				ConflictingLabel:   other.entry.Label,
				SuggestedStart:     suggested,
			},
			"Schedule conflict",
			fmt.Sprintf("%q (%s-%s) overlaps %q (%s-%s).",
				cand.entry.Label, formatClock(cand.start), formatClock(cand.end),
				other.entry.Label, formatClock(other.start), formatClock(other.end)),
			conflictSeverity,
			[]string{cand.entry.ID, other.entry.ID},
			fmt.Sprintf("Start %q at %s, after %q ends.", cand.entry.Label, suggested, other.entry.Label),
		)
	}

	if prev, required, gap, ok := r.preparationShortage(cand, append(endOnly, others...)); ok {
		shortfall := required - gap
		build(
			domain.PreparationPayload{
				PrecedingEntryID: prev.entry.ID,
				PrecedingLabel:   prev.entry.Label,
				GapMinutes:       gap,
				RequiredMinutes:  required,
				ShortfallMinutes: shortfall,
			},
			"Not enough preparation time",
			fmt.Sprintf("Only %d minutes between %q and %q; %d minutes of preparation are recommended.",
				gap, prev.entry.Label, cand.entry.Label, required),
			preparationSeverity,
			[]string{prev.entry.ID, cand.entry.ID},
			fmt.Sprintf("Move %q %d minutes later, to %s.",
				cand.entry.Label, shortfall, formatClock(cand.start+shortfall)),
		)
	}

	if total, ids, ok := r.overload(cand, others); ok {
		build(
			domain.OverworkPayload{TotalMinutes: total, ThresholdMinutes: r.overloadThreshold},
			"Overloaded day",
			fmt.Sprintf("%d minutes are scheduled for the day, at or above the %d minute limit.",
				total, r.overloadThreshold),
			overworkSeverity,
			ids,
			"Move some entries to another day or insert rest breaks.",
		)
	}

	return alerts
}

// conflicts returns the first overlapping entry, or all of them when
// configured to report every conflict.
func (r Rules) conflicts(cand interval, others []interval) []interval {
	var out []interval
	for _, other := range others {
		if !cand.overlaps(other) {
			continue
		}
		out = append(out, other)
		if !r.reportAllConflicts {
			break
		}
	}
	return out
}

// preparationShortage finds the entry ending last at or before the
// candidate's start and reports whether the gap is below the lead time.
func (r Rules) preparationShortage(cand interval, others []interval) (prev interval, required, gap int, short bool) {
	if !r.isHighStakes(cand.entry.Label) {
		return interval{}, 0, 0, false
	}

	required = r.defaultPreparation
	if p := cand.entry.PreparationMinutes; p != nil {
		required = *p
	}

	found := false
	for _, other := range others {
		if other.end > cand.start {
			continue
		}
		if !found || other.end >= prev.end {
			prev, found = other, true
		}
	}
	if !found {
		return interval{}, 0, 0, false
	}

	gap = cand.start - prev.end
	return prev, required, gap, gap < required
}

func (r Rules) overload(cand interval, others []interval) (total int, ids []string, over bool) {
	total = cand.duration()
	ids = make([]string, 0, len(others)+1)
	for _, other := range others {
		total += other.duration()
		ids = append(ids, other.entry.ID)
	}
	ids = append(ids, cand.entry.ID)
	return total, ids, total >= r.overloadThreshold
}

func (r Rules) isHighStakes(label string) bool {
	label = strings.ToLower(label)
	for _, k := range r.highStakes {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}
