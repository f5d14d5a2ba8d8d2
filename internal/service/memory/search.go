package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// Search returns the authenticated account's memories most similar to the
// query text, ranked by cosine similarity only.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.ScoredMemory, error) {
	if err := input.Validate(s.cfg.MaxSearchLimit); err != nil {
		return nil, err
	}

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.gate.RequireFeature(ctx, accountID, domain.FeatureMemory); err != nil {
		return nil, err
	}

	vec, err := s.embedText(ctx, input.Query)
	if err != nil {
		return nil, fmt.Errorf("memory.Search: %w", err)
	}

	filter := domain.MemorySearchFilter{
		Limit:         input.Limit,
		Type:          input.Type,
		MinSimilarity: s.cfg.DefaultMinSimilarity,
	}
	if filter.Limit == 0 {
		filter.Limit = s.cfg.DefaultSearchLimit
	}
	if input.MinSimilarity != nil {
		filter.MinSimilarity = *input.MinSimilarity
	}

	hits, err := s.repo.Search(ctx, accountID, vec, filter)
	if err != nil {
		return nil, fmt.Errorf("memory.Search: %w", err)
	}
	return hits, nil
}

// Recent returns the authenticated account's newest memories first.
// A zero limit uses the configured default; larger limits are capped.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Memory, error) {
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit == 0 {
		limit = s.cfg.DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	memories, err := s.repo.Recent(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("memory.Recent: %w", err)
	}
	return memories, nil
}
