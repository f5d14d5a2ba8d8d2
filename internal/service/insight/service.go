// Package insight extracts durable facts from conversation windows and
// stores them as memories. Extraction is best effort: it never reports a
// failure to its caller.
package insight

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
)

// CallType tags the usage counter breakdown for extraction calls.
const CallType = "insight"

// completer defines the reasoning service interface needed by insight service.
type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// memorySaver defines the memory store interface needed by insight service.
type memorySaver interface {
	Save(ctx context.Context, input memory.SaveInput) (uuid.UUID, error)
}

// entitlements defines the gate interface needed by insight service.
type entitlements interface {
	CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	TryConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision
}

// Service runs insight extraction.
type Service struct {
	log      *slog.Logger
	llm      completer
	memories memorySaver
	gate     entitlements
	cfg      config.InsightConfig
}

// NewService creates a new insight service instance.
func NewService(
	logger *slog.Logger,
	llm completer,
	memories memorySaver,
	gate entitlements,
	cfg config.InsightConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "insight"),
		llm:      llm,
		memories: memories,
		gate:     gate,
		cfg:      cfg,
	}
}
