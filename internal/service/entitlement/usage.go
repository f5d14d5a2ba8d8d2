package entitlement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// UsageReport is the account's quota position for the current day.
type UsageReport struct {
	Tier       domain.PlanTier
	Day        time.Time
	TotalCalls int
	Breakdown  map[string]int
	Limit      int
	Remaining  int
	Unlimited  bool
}

// TryConsumeCall counts one AI call against today's quota.
//
// Unlimited plans are allowed without touching the counter. Otherwise the
// conditional increment happens in a single store statement, so concurrent
// callers never exceed the limit. If the store cannot be reached the call is
// allowed and the fault logged.
func (s *Service) TryConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision {
	now := s.now()

	plan, err := s.GetPlan(ctx, accountID)
	if err != nil {
		s.logFailOpen(ctx, accountID, callType, err)
		return domain.CallDecision{Allowed: true, Degraded: true}
	}

	limit := s.effectiveLimit(plan, now)
	if limit == domain.UnlimitedCalls {
		return domain.CallDecision{Allowed: true, Unlimited: true}
	}

	total, ok, err := s.usage.IncrementIfBelow(ctx, accountID, domain.UsageDay(now), callType, limit)
	if err != nil {
		s.logFailOpen(ctx, accountID, callType, err)
		return domain.CallDecision{Allowed: true, Degraded: true}
	}
	if !ok {
		s.log.InfoContext(ctx, "daily quota exhausted",
			slog.String("account_id", accountID.String()),
			slog.Int("limit", limit))
		return domain.CallDecision{Allowed: false, Remaining: 0}
	}

	return domain.CallDecision{Allowed: true, Remaining: max(limit-total, 0)}
}

// ConsumeCall is TryConsumeCall for callers that only need a go/no-go answer.
// It returns domain.ErrQuotaExceeded when the call is denied.
func (s *Service) ConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) error {
	if !s.TryConsumeCall(ctx, accountID, callType).Allowed {
		return domain.ErrQuotaExceeded
	}
	return nil
}

// Usage returns today's counter for the account together with its limit.
func (s *Service) Usage(ctx context.Context, accountID uuid.UUID) (*UsageReport, error) {
	now := s.now()

	plan, err := s.GetPlan(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Usage: %w", err)
	}

	day := domain.UsageDay(now)
	counter, err := s.usage.Get(ctx, accountID, day)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Usage: %w", err)
	}

	limit := s.effectiveLimit(plan, now)
	report := &UsageReport{
		Tier:       plan.Tier,
		Day:        day,
		TotalCalls: counter.TotalCalls,
		Breakdown:  counter.Breakdown,
		Limit:      limit,
		Unlimited:  limit == domain.UnlimitedCalls,
	}
	if !report.Unlimited {
		report.Remaining = max(limit-counter.TotalCalls, 0)
	}
	return report, nil
}

// CleanupUsage deletes counters older than retentionDays and returns how many were removed.
func (s *Service) CleanupUsage(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays < 1 {
		return 0, domain.NewValidationError("retention_days", "must be at least 1")
	}

	cutoff := domain.UsageDay(s.now()).AddDate(0, 0, -retentionDays)
	n, err := s.usage.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("entitlement.CleanupUsage: %w", err)
	}

	s.log.InfoContext(ctx, "usage counters cleaned up",
		slog.Int("deleted", n),
		slog.Time("cutoff", cutoff))
	return n, nil
}

func (s *Service) logFailOpen(ctx context.Context, accountID uuid.UUID, callType string, err error) {
	s.log.ErrorContext(ctx, "quota check failed, allowing call",
		slog.String("account_id", accountID.String()),
		slog.String("call_type", callType),
		slog.String("error", err.Error()))
}
