// Package risk analyzes a candidate schedule entry against the rest of the
// day and records the resulting alerts.
package risk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

type alertRepo interface {
	CreateBatch(ctx context.Context, alerts []domain.RiskAlert) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type featureChecker interface {
	CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
}

// Service implements risk analysis.
type Service struct {
	log    *slog.Logger
	alerts alertRepo
	tx     txManager
	gate   featureChecker
	rules  Rules
	now    func() time.Time
}

// NewService creates a new risk service instance.
func NewService(
	logger *slog.Logger,
	alerts alertRepo,
	tx txManager,
	gate featureChecker,
	rules Rules,
) *Service {
	return &Service{
		log:    logger.With("service", "risk"),
		alerts: alerts,
		tx:     tx,
		gate:   gate,
		rules:  rules,
		now:    time.Now,
	}
}

// Analyze evaluates the candidate for the authenticated account and stores
// the alerts as one batch. Accounts without the risk_alerts feature get an
// empty list and nothing is stored.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) ([]domain.RiskAlert, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !s.gate.CanUseFeature(ctx, accountID, domain.FeatureRiskAlerts) {
		return []domain.RiskAlert{}, nil
	}

	now := s.now().UTC()
	day := input.day(now)

	alerts := s.rules.Evaluate(accountID, input.Candidate, input.Existing, day, now)
	if len(alerts) == 0 {
		return []domain.RiskAlert{}, nil
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.alerts.CreateBatch(ctx, alerts)
	})
	if err != nil {
		return nil, fmt.Errorf("risk.Analyze: %w", err)
	}

	s.log.InfoContext(ctx, "risk alerts recorded",
		slog.String("account_id", accountID.String()),
		slog.String("entry_id", input.Candidate.ID),
		slog.Int("count", len(alerts)))

	return alerts, nil
}
