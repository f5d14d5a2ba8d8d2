package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// Save embeds the text and stores it as a new memory of the authenticated
// account. If the embedding cannot be computed nothing is written.
func (s *Service) Save(ctx context.Context, input SaveInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	if err := s.gate.RequireFeature(ctx, accountID, domain.FeatureMemory); err != nil {
		return uuid.Nil, err
	}

	vec, err := s.embedText(ctx, input.Content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("memory.Save: %w", err)
	}

	importance := DefaultImportance
	if input.Importance != nil {
		importance = *input.Importance
	}

	m := domain.Memory{
		ID:         s.newID(),
		AccountID:  accountID,
		Type:       input.Type,
		Content:    input.Content,
		Embedding:  vec,
		Importance: importance,
		MemoryDate: input.MemoryDate,
		Metadata:   input.Metadata,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return uuid.Nil, fmt.Errorf("memory.Save: %w", err)
	}

	s.log.InfoContext(ctx, "memory saved",
		slog.String("account_id", accountID.String()),
		slog.String("memory_id", m.ID.String()),
		slog.String("type", m.Type.String()))

	return m.ID, nil
}

// Delete removes one of the authenticated account's memories.
// Unknown ids and ids of other accounts are a silent no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.repo.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("memory.Delete: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "memory deleted",
			slog.String("account_id", accountID.String()),
			slog.String("memory_id", id.String()))
	}
	return nil
}

// embedText calls the embedding service and checks the deployment's
// dimensionality. Cosine distance is undefined for a zero or non-finite
// vector, so those are rejected rather than stored or searched with.
func (s *Service) embedText(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.embed.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) != s.cfg.EmbeddingDims {
		return nil, fmt.Errorf("got %d dimensions, want %d: %w", len(vec), s.cfg.EmbeddingDims, domain.ErrEmbeddingUnavailable)
	}

	var norm float64
	for _, v := range vec {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite component: %w", domain.ErrEmbeddingUnavailable)
		}
		norm += f * f
	}
	if norm == 0 {
		return nil, fmt.Errorf("zero vector: %w", domain.ErrEmbeddingUnavailable)
	}
	return vec, nil
}
