// Package memory implements the semantic memory store: saving facts with
// embeddings and retrieving them by cosine similarity.
package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

// memoryRepo defines the memory repository interface needed by memory service.
type memoryRepo interface {
	Create(ctx context.Context, m domain.Memory) error
	Search(ctx context.Context, accountID uuid.UUID, query []float32, filter domain.MemorySearchFilter) ([]domain.ScoredMemory, error)
	Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Memory, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

// embedder defines the embedding service interface needed by memory service.
type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// featureGate defines the entitlement check needed by memory service.
type featureGate interface {
	RequireFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) error
}

// Service implements save, search, recent and delete over an account's memories.
type Service struct {
	log   *slog.Logger
	repo  memoryRepo
	embed embedder
	gate  featureGate
	cfg   config.MemoryConfig
	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates a new memory service instance.
func NewService(
	logger *slog.Logger,
	repo memoryRepo,
	embed embedder,
	gate featureGate,
	cfg config.MemoryConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "memory"),
		repo:  repo,
		embed: embed,
		gate:  gate,
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.New,
	}
}
