// Package entitlement implements the feature gate and daily quota gate.
package entitlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// planRepo defines the plan repository interface needed by the entitlement service.
type planRepo interface {
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error)
	CreateIfAbsent(ctx context.Context, p domain.Plan) (*domain.Plan, error)
	Upsert(ctx context.Context, p domain.Plan) (*domain.Plan, error)
}

// usageRepo defines the usage counter repository interface needed by the entitlement service.
type usageRepo interface {
	IncrementIfBelow(ctx context.Context, accountID uuid.UUID, day time.Time, callType string, limit int) (int, bool, error)
	Get(ctx context.Context, accountID uuid.UUID, day time.Time) (*domain.UsageCounter, error)
	DeleteBefore(ctx context.Context, day time.Time) (int, error)
}

// Service resolves plans and enforces feature flags and daily call quotas.
type Service struct {
	log     *slog.Logger
	plans   planRepo
	usage   usageRepo
	catalog domain.PlanCatalog
	now     func() time.Time
}

// NewService creates a new entitlement service instance.
func NewService(
	logger *slog.Logger,
	plans planRepo,
	usage usageRepo,
	catalog domain.PlanCatalog,
) *Service {
	return &Service{
		log:     logger.With("service", "entitlement"),
		plans:   plans,
		usage:   usage,
		catalog: catalog,
		now:     time.Now,
	}
}
