package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/alert"
	memoryrepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/memory"
	planrepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/plan"
	usagerepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/usage"
	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/service/alert"
	"github.com/heartmarshall/assistant-core/internal/service/briefing"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
	"github.com/heartmarshall/assistant-core/internal/service/insight"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"github.com/heartmarshall/assistant-core/internal/service/risk"
)

// Completer is the reasoning service every LLM-backed feature shares.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Embedder turns text into a vector of the configured dimension.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Services holds every domain service, wired to the postgres adapters.
type Services struct {
	Entitlement *entitlement.Service
	Memory      *memory.Service
	Insight     *insight.Service
	Risk        *risk.Service
	Alert       *alert.Service
	Briefing    *briefing.Service
}

// NewServices builds the service graph. The entitlement service is the
// single source of truth for features and quota; everything else asks it.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, llm Completer, embed Embedder) *Services {
	txm := postgres.NewTxManager(pool)
	alerts := alertrepo.New(pool)

	ent := entitlement.NewService(logger, planrepo.New(pool), usagerepo.New(pool), cfg.Entitlement.Catalog())
	mem := memory.NewService(logger, memoryrepo.New(pool), embed, ent, cfg.Memory)

	return &Services{
		Entitlement: ent,
		Memory:      mem,
		Insight:     insight.NewService(logger, llm, mem, ent, cfg.Insight),
		Risk:        risk.NewService(logger, alerts, txm, ent, risk.NewRules(cfg.Risk)),
		Alert:       alert.NewService(logger, alerts, cfg.Alerts),
		Briefing:    briefing.NewService(logger, llm, mem, ent, cfg.Briefing),
	}
}
