package entitlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// GetPlan returns the account's plan, creating a standard plan on first lookup.
func (s *Service) GetPlan(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error) {
	plan, err := s.plans.GetByAccount(ctx, accountID)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("entitlement.GetPlan: %w", err)
	}

	plan, err = s.plans.CreateIfAbsent(ctx, s.catalog.Build(accountID, domain.PlanTierStandard, s.now()))
	if err != nil {
		return nil, fmt.Errorf("entitlement.GetPlan: create default: %w", err)
	}

	s.log.InfoContext(ctx, "default plan created",
		slog.String("account_id", accountID.String()),
		slog.String("tier", plan.Tier.String()))

	return plan, nil
}

// CanUseFeature reports whether the account's plan enables the feature.
// It fails closed: if the plan cannot be loaded the feature is denied.
func (s *Service) CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool {
	plan, err := s.GetPlan(ctx, accountID)
	if err != nil {
		s.log.ErrorContext(ctx, "feature check failed, denying",
			slog.String("account_id", accountID.String()),
			slog.String("feature", feature.String()),
			slog.String("error", err.Error()))
		return false
	}
	return plan.HasFeature(feature, s.now())
}

// RequireFeature returns a *domain.FeatureDisabledError unless the account's
// plan enables the feature.
func (s *Service) RequireFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) error {
	if !s.CanUseFeature(ctx, accountID, feature) {
		return domain.NewFeatureDisabledError(feature)
	}
	return nil
}

// UpgradePlan replaces the account's plan with the tier's template.
// The plan row is kept; only its tier, limits, features and expiry change.
func (s *Service) UpgradePlan(ctx context.Context, input UpgradePlanInput) (*domain.Plan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	plan := s.catalog.Build(input.AccountID, input.Tier, now)
	plan.ExpiresAt = input.ExpiresAt

	stored, err := s.plans.Upsert(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("entitlement.UpgradePlan: %w", err)
	}

	attrs := []any{
		slog.String("account_id", input.AccountID.String()),
		slog.String("tier", stored.Tier.String()),
	}
	if input.ExpiresAt != nil {
		attrs = append(attrs, slog.Time("expires_at", *input.ExpiresAt))
	}
	s.log.InfoContext(ctx, "plan changed", attrs...)

	return stored, nil
}

// effectiveLimit returns the daily limit that applies right now. An inactive
// or expired plan is held to the standard tier's limit.
func (s *Service) effectiveLimit(plan *domain.Plan, now time.Time) int {
	if plan.IsActiveAt(now) {
		return plan.DailyCallLimit
	}
	return s.catalog[domain.PlanTierStandard].DailyCallLimit
}
