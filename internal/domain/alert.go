package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity ranks user-facing urgency from 1 (lowest) to 5 (most urgent).
type Severity int

const (
	SeverityMin Severity = 1
	SeverityMax Severity = 5
)

func (s Severity) IsValid() bool {
	return s >= SeverityMin && s <= SeverityMax
}

// AlertPayload is the rule-specific part of a RiskAlert. The set of
// implementations is closed: one per AlertType.
type AlertPayload interface {
	AlertType() AlertType
	sealed()
}

// ConflictPayload describes an overlap with another entry.
type ConflictPayload struct {
	ConflictingEntryID string `json:"conflicting_entry_id"`
	ConflictingLabel   string `json:"conflicting_label"`
	SuggestedStart     string `json:"suggested_start"`
}

// PreparationPayload describes a too-short gap before a high-stakes entry.
type PreparationPayload struct {
	PrecedingEntryID string `json:"preceding_entry_id"`
	PrecedingLabel   string `json:"preceding_label"`
	GapMinutes       int    `json:"gap_minutes"`
	RequiredMinutes  int    `json:"required_minutes"`
	ShortfallMinutes int    `json:"shortfall_minutes"`
}

// OverworkPayload describes a day whose scheduled time reaches the limit.
type OverworkPayload struct {
	TotalMinutes     int `json:"total_minutes"`
	ThresholdMinutes int `json:"threshold_minutes"`
}

// DeadlinePayload describes a deadline at risk.
type DeadlinePayload struct {
	Deadline *time.Time `json:"deadline,omitempty"`
}

// HealthPayload describes a wellbeing concern.
type HealthPayload struct {
	Concern string `json:"concern,omitempty"`
}

func (ConflictPayload) AlertType() AlertType    { return AlertTypeScheduleConflict }
func (PreparationPayload) AlertType() AlertType { return AlertTypePreparationShortage }
func (OverworkPayload) AlertType() AlertType    { return AlertTypeOverworkWarning }
func (DeadlinePayload) AlertType() AlertType    { return AlertTypeDeadlineRisk }
func (HealthPayload) AlertType() AlertType      { return AlertTypeHealthConcern }

func (ConflictPayload) sealed()    {}
func (PreparationPayload) sealed() {}
func (OverworkPayload) sealed()    {}
func (DeadlinePayload) sealed()    {}
func (HealthPayload) sealed()      {}

// RiskAlert is an alert produced by the risk analyzer. Only Read and
// Dismissed ever change, and only from false to true.
type RiskAlert struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Type            AlertType
	Title           string
	Message         string
	Severity        Severity
	RelatedEntryIDs []string
	SuggestedAction *string
	Payload         AlertPayload
	Read            bool
	Dismissed       bool
	AlertDate       time.Time
	CreatedAt       time.Time
}

// NewRiskAlert builds an unread alert whose Type follows its payload.
func NewRiskAlert(accountID uuid.UUID, payload AlertPayload, title, message string, severity Severity, related []string, action *string, day, now time.Time) RiskAlert {
	return RiskAlert{
		ID:              uuid.New(),
		AccountID:       accountID,
		Type:            payload.AlertType(),
		Title:           title,
		Message:         message,
		Severity:        severity,
		RelatedEntryIDs: related,
		SuggestedAction: action,
		Payload:         payload,
		AlertDate:       day,
		CreatedAt:       now,
	}
}

// AlertListFilter narrows an alert ledger listing.
type AlertListFilter struct {
	UnreadOnly bool
	Date       *time.Time
	Limit      int
}
