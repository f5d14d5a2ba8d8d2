package entitlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// UpgradePlanInput holds parameters for the plan change operation.
type UpgradePlanInput struct {
	AccountID uuid.UUID
	Tier      domain.PlanTier
	ExpiresAt *time.Time
}

// Validate validates the upgrade plan input.
func (i UpgradePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if !i.Tier.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tier", Message: "must be one of standard, pro, max"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
