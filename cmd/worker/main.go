// Command worker consumes conversation insight tasks from the Redis queue.
// It is only needed when the server runs with INSIGHT_DISPATCHER=asynq.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/adapter/provider/claude"
	"github.com/heartmarshall/assistant-core/internal/adapter/provider/embedding"
	"github.com/heartmarshall/assistant-core/internal/app"
	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/service/insight"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "worker")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := app.NewServices(cfg, logger, pool,
		claude.New(logger, cfg.LLM),
		embedding.New(logger, cfg.Embedding, cfg.Memory.EmbeddingDims),
	)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Insight.RedisAddr},
		asynq.Config{
			Concurrency: cfg.Insight.Concurrency,
			Queues:      map[string]int{cfg.Insight.Queue: 1},
			Logger:      newAsynqLogger(logger),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(insight.TaskTypeExtract, insight.NewTaskHandler(logger, svc.Insight))

	logger.Info("insight worker starting",
		slog.Any("build", app.Build()),
		slog.String("queue", cfg.Insight.Queue),
		slog.Int("concurrency", cfg.Insight.Concurrency),
	)

	// Run blocks until SIGINT or SIGTERM and then drains active tasks.
	if err := srv.Run(mux); err != nil {
		logger.Error("worker stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
