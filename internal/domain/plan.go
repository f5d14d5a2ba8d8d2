package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UnlimitedCalls marks a plan whose daily AI-call limit is not enforced.
const UnlimitedCalls = -1

// Plan is the entitlement record of one account. Exactly one exists per
// account; it is created lazily and never hard-deleted.
type Plan struct {
	AccountID         uuid.UUID
	Tier              PlanTier
	Active            bool
	DailyCallLimit    int
	StorageQuotaBytes int64
	Features          map[Feature]bool
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsUnlimited reports whether the daily call limit is not enforced.
func (p *Plan) IsUnlimited() bool {
	return p.DailyCallLimit == UnlimitedCalls
}

// IsActiveAt reports whether the plan is active and not expired at now.
func (p *Plan) IsActiveAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	return p.ExpiresAt == nil || now.Before(*p.ExpiresAt)
}

// HasFeature returns the flag value, or false if the plan is inactive,
// expired, or the flag is absent.
func (p *Plan) HasFeature(f Feature, now time.Time) bool {
	if !p.IsActiveAt(now) {
		return false
	}
	return p.Features[f]
}

// PlanSpec is the template a tier's plan rows are built from.
type PlanSpec struct {
	DailyCallLimit    int
	StorageQuotaBytes int64
	Features          []Feature
}

// PlanCatalog maps every tier to its template.
type PlanCatalog map[PlanTier]PlanSpec

const (
	mb = int64(1024 * 1024)
	gb = 1024 * mb
)

// DefaultPlanCatalog returns the built-in tier templates.
func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		PlanTierStandard: {
			DailyCallLimit:    10,
			StorageQuotaBytes: 100 * mb,
		},
		PlanTierPro: {
			DailyCallLimit:    100,
			StorageQuotaBytes: 1 * gb,
			Features:          []Feature{FeatureMemory, FeatureRiskAlerts, FeatureSmartBriefing},
		},
		PlanTierMax: {
			DailyCallLimit:    UnlimitedCalls,
			StorageQuotaBytes: 10 * gb,
			Features:          []Feature{FeatureMemory, FeatureRiskAlerts, FeatureSmartBriefing, FeaturePrioritySupport},
		},
	}
}

// Build returns an active plan for the account on the given tier.
// An unknown tier falls back to standard.
func (c PlanCatalog) Build(accountID uuid.UUID, tier PlanTier, now time.Time) Plan {
	spec, ok := c[tier]
	if !ok {
		tier = PlanTierStandard
		spec = c[PlanTierStandard]
	}

	features := make(map[Feature]bool, len(spec.Features))
	for _, f := range spec.Features {
		features[f] = true
	}

	return Plan{
		AccountID:         accountID,
		Tier:              tier,
		Active:            true,
		DailyCallLimit:    spec.DailyCallLimit,
		StorageQuotaBytes: spec.StorageQuotaBytes,
		Features:          features,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Includes reports whether the tier's template enables the feature.
func (c PlanCatalog) Includes(tier PlanTier, f Feature) bool {
	return slices.Contains(c[tier].Features, f)
}
