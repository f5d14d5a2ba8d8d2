package domain

// PlanTier is the entitlement level of an account.
type PlanTier string

const (
	PlanTierStandard PlanTier = "standard"
	PlanTierPro      PlanTier = "pro"
	PlanTierMax      PlanTier = "max"
)

func (t PlanTier) String() string { return string(t) }

func (t PlanTier) IsValid() bool {
	switch t {
	case PlanTierStandard, PlanTierPro, PlanTierMax:
		return true
	}
	return false
}

// Feature is a named boolean capability gated by plan tier.
type Feature string

const (
	FeatureMemory          Feature = "memory"
	FeatureRiskAlerts      Feature = "risk_alerts"
	FeatureSmartBriefing   Feature = "smart_briefing"
	FeaturePrioritySupport Feature = "priority_support"
)

func (f Feature) String() string { return string(f) }

func (f Feature) IsValid() bool {
	switch f {
	case FeatureMemory, FeatureRiskAlerts, FeatureSmartBriefing, FeaturePrioritySupport:
		return true
	}
	return false
}

// MemoryType classifies a semantic memory. The set is closed.
type MemoryType string

const (
	MemoryTypeConversation    MemoryType = "conversation"
	MemoryTypeMemo            MemoryType = "memo"
	MemoryTypeInsight         MemoryType = "insight"
	MemoryTypePreference      MemoryType = "preference"
	MemoryTypeAchievement     MemoryType = "achievement"
	MemoryTypeSchedulePattern MemoryType = "schedule_pattern"
)

func (t MemoryType) String() string { return string(t) }

func (t MemoryType) IsValid() bool {
	switch t {
	case MemoryTypeConversation, MemoryTypeMemo, MemoryTypeInsight,
		MemoryTypePreference, MemoryTypeAchievement, MemoryTypeSchedulePattern:
		return true
	}
	return false
}

// AlertType is the kind of a risk alert. The set is closed.
type AlertType string

const (
	AlertTypeScheduleConflict    AlertType = "schedule_conflict"
	AlertTypePreparationShortage AlertType = "preparation_shortage"
	AlertTypeOverworkWarning     AlertType = "overwork_warning"
	AlertTypeDeadlineRisk        AlertType = "deadline_risk"
	AlertTypeHealthConcern       AlertType = "health_concern"
)

func (t AlertType) String() string { return string(t) }

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeScheduleConflict, AlertTypePreparationShortage, AlertTypeOverworkWarning,
		AlertTypeDeadlineRisk, AlertTypeHealthConcern:
		return true
	}
	return false
}

// ImportanceTier is the bucket a briefing item lands in.
type ImportanceTier string

const (
	ImportanceCritical  ImportanceTier = "critical"
	ImportanceImportant ImportanceTier = "important"
	ImportanceNormal    ImportanceTier = "normal"
	// ImportanceFYI only appears in reasoning responses; it collapses into normal.
	ImportanceFYI ImportanceTier = "fyi"
)

// Bucket maps a raw tier onto one of the three briefing buckets.
// Unknown values land in normal.
func (t ImportanceTier) Bucket() ImportanceTier {
	switch t {
	case ImportanceCritical, ImportanceImportant:
		return t
	}
	return ImportanceNormal
}
