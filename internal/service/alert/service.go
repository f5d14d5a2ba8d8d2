// Package alert serves the per-account risk alert ledger.
package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

type alertRepo interface {
	List(ctx context.Context, accountID uuid.UUID, filter domain.AlertListFilter) ([]domain.RiskAlert, error)
	CountUnread(ctx context.Context, accountID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, accountID, id uuid.UUID) error
	Dismiss(ctx context.Context, accountID, id uuid.UUID) error
}

// Service implements the alert ledger operations.
type Service struct {
	log  *slog.Logger
	repo alertRepo
	cfg  config.AlertsConfig
}

// NewService creates a new alert service instance.
func NewService(logger *slog.Logger, repo alertRepo, cfg config.AlertsConfig) *Service {
	return &Service{
		log:  logger.With("service", "alert"),
		repo: repo,
		cfg:  cfg,
	}
}

// ListInput narrows a listing.
type ListInput struct {
	UnreadOnly bool
	Date       *time.Time
}

// List returns the newest non-dismissed alerts of the authenticated account,
// at most one page.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.RiskAlert, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	alerts, err := s.repo.List(ctx, accountID, domain.AlertListFilter{
		UnreadOnly: input.UnreadOnly,
		Date:       input.Date,
		Limit:      s.cfg.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("alert.List: %w", err)
	}
	return alerts, nil
}

// UnreadCount returns how many visible alerts are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("alert.UnreadCount: %w", err)
	}
	return n, nil
}

// MarkRead marks the alert read. Repeated calls and ids that are unknown or
// belong to another account succeed without effect.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.MarkRead(ctx, accountID, id); err != nil {
		return fmt.Errorf("alert.MarkRead: %w", err)
	}
	return nil
}

// Dismiss hides the alert from every later listing. Like MarkRead it is
// idempotent and silent for foreign ids.
func (s *Service) Dismiss(ctx context.Context, id uuid.UUID) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Dismiss(ctx, accountID, id); err != nil {
		return fmt.Errorf("alert.Dismiss: %w", err)
	}

	s.log.DebugContext(ctx, "alert dismissed",
		slog.String("account_id", accountID.String()),
		slog.String("alert_id", id.String()))
	return nil
}
