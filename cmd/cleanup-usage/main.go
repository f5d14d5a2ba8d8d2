// Command cleanup-usage deletes daily usage counters older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	planrepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/plan"
	usagerepo "github.com/heartmarshall/assistant-core/internal/adapter/postgres/usage"
	"github.com/heartmarshall/assistant-core/internal/app"
	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "cleanup-usage")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := entitlement.NewService(logger, planrepo.New(pool), usagerepo.New(pool), cfg.Entitlement.Catalog())

	deleted, err := svc.CleanupUsage(ctx, cfg.Entitlement.UsageRetentionDays)
	if err != nil {
		logger.Error("usage cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Entitlement.UsageRetentionDays),
		)
		os.Exit(1)
	}

	logger.Info("usage cleanup completed",
		slog.Int("deleted", deleted),
		slog.Int("retention_days", cfg.Entitlement.UsageRetentionDays),
	)
}
