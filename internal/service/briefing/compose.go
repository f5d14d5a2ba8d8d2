package briefing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// Compose ranks the items for the authenticated account. It returns a nil
// Briefing with ErrFeatureDisabled when the plan lacks smart_briefing, and a
// nil Briefing with ErrMalformedUpstreamResponse when the reasoning reply
// cannot be parsed.
func (s *Service) Compose(ctx context.Context, input ComposeInput) (*domain.Briefing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	briefingOn, memoryOn := s.features(ctx, accountID)
	if !briefingOn {
		return nil, domain.NewFeatureDisabledError(domain.FeatureSmartBriefing)
	}

	items := input.Items
	if s.cfg.MaxItems > 0 && len(items) > s.cfg.MaxItems {
		items = items[:s.cfg.MaxItems]
	}

	var memories []domain.ScoredMemory
	if goal := strings.TrimSpace(input.Goal); goal != "" && memoryOn {
		memories = s.recall(ctx, accountID, goal)
	}

	if err := s.gate.ConsumeCall(ctx, accountID, CallType); err != nil {
		return nil, err
	}

	reply, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(items, input.Goal, memories))
	if err != nil {
		return nil, fmt.Errorf("briefing.Compose: %w", err)
	}

	b, err := parseReply(reply, items)
	if err != nil {
		s.log.WarnContext(ctx, "briefing reply malformed",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("briefing.Compose: %w", err)
	}

	b.MemoriesUsed = len(memories)
	b.GeneratedAt = s.now().UTC()

	s.log.InfoContext(ctx, "briefing composed",
		slog.String("account_id", accountID.String()),
		slog.Int("items", len(items)),
		slog.Int("critical", len(b.Critical)),
		slog.Int("important", len(b.Important)),
		slog.Int("normal", len(b.Normal)),
		slog.Int("memories_used", b.MemoriesUsed))

	return b, nil
}

// features checks the two independently gated features concurrently.
func (s *Service) features(ctx context.Context, accountID uuid.UUID) (briefingOn, memoryOn bool) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		briefingOn = s.gate.CanUseFeature(gctx, accountID, domain.FeatureSmartBriefing)
		return nil
	})
	g.Go(func() error {
		memoryOn = s.gate.CanUseFeature(gctx, accountID, domain.FeatureMemory)
		return nil
	})
	_ = g.Wait()
	return briefingOn, memoryOn
}

// recall fetches memories related to the goal. Failures only cost the
// personalization, so they are logged and yield no memories.
func (s *Service) recall(ctx context.Context, accountID uuid.UUID, goal string) []domain.ScoredMemory {
	found, err := s.memories.Search(ctx, memory.SearchInput{
		Query: goal,
		Limit: s.cfg.MemoryTopK,
	})
	if err != nil {
		s.log.WarnContext(ctx, "briefing memory recall failed",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()))
		return nil
	}
	if len(found) > s.cfg.MemoryTopK {
		found = found[:s.cfg.MemoryTopK]
	}
	return found
}
