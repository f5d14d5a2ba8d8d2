// Package briefing composes a tiered, personalized digest of content items
// by delegating relevance scoring to the reasoning service.
package briefing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
)

// CallType tags the usage counter breakdown for briefing calls.
const CallType = "briefing"

type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type memorySearcher interface {
	Search(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error)
}

type entitlements interface {
	CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	ConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) error
}

// Service composes briefings.
type Service struct {
	log      *slog.Logger
	llm      completer
	memories memorySearcher
	gate     entitlements
	cfg      config.BriefingConfig
	now      func() time.Time
}

// NewService creates a new briefing service instance.
func NewService(
	logger *slog.Logger,
	llm completer,
	memories memorySearcher,
	gate entitlements,
	cfg config.BriefingConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "briefing"),
		llm:      llm,
		memories: memories,
		gate:     gate,
		cfg:      cfg,
		now:      time.Now,
	}
}
