package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/adapter/provider/claude"
	"github.com/heartmarshall/assistant-core/internal/adapter/provider/embedding"
	"github.com/heartmarshall/assistant-core/internal/auth"
	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/service/insight"
	"github.com/heartmarshall/assistant-core/internal/transport/middleware"
	"github.com/heartmarshall/assistant-core/internal/transport/rest"
)

// Providers are the external services the application talks to.
type Providers struct {
	LLM      Completer
	Embedder Embedder
	// Queue is required when the insight dispatcher is asynq.
	Queue *asynq.Client
}

// App is the assembled HTTP application and the resources it owns.
type App struct {
	Handler  http.Handler
	Services *Services

	limiter *middleware.RateLimiter
	inproc  *insight.InProcessDispatcher
}

// New wires services, handlers and middleware into an App.
func New(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, p Providers) (*App, error) {
	svc := NewServices(cfg, logger, pool, p.LLM, p.Embedder)
	a := &App{Services: svc}

	health := rest.NewHealthHandler(Version).With("database", pool)

	var dispatcher insight.Dispatcher
	switch cfg.Insight.Dispatcher {
	case config.DispatcherAsynq:
		if p.Queue == nil {
			return nil, errors.New("app: asynq dispatcher needs a queue client")
		}
		dispatcher = insight.NewQueueDispatcher(logger, p.Queue, cfg.Insight.Queue)
		health.With("queue", rest.PingFunc(func(context.Context) error { return p.Queue.Ping() }))
	default:
		a.inproc = insight.NewInProcessDispatcher(logger, svc.Insight, cfg.Insight.MaxInFlight)
		dispatcher = a.inproc
	}

	// Tokens are minted by the session service; the TTL only matters for tooling.
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 15*time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:       health,
		Plan:         rest.NewPlanHandler(svc.Entitlement, logger),
		Memory:       rest.NewMemoryHandler(svc.Memory, logger),
		Conversation: rest.NewConversationHandler(dispatcher, logger),
		Schedule:     rest.NewScheduleHandler(svc.Risk, logger),
		Alert:        rest.NewAlertHandler(svc.Alert, logger),
		Briefing:     rest.NewBriefingHandler(svc.Briefing, logger),
		Admin:        rest.NewAdminHandler(svc.Entitlement, logger),
	})

	a.limiter = middleware.NewRateLimiter(5 * time.Minute)
	a.Handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		a.limiter.Limit(cfg.Server.RateLimitPerMin),
	)(router)

	return a, nil
}

// Close stops background work. In-process insight extractions that already
// started are allowed to finish.
func (a *App) Close() {
	a.limiter.Stop()
	if a.inproc != nil {
		a.inproc.Wait()
	}
}

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")

	logger.Info("starting application",
		slog.Any("build", Build()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("insight_dispatcher", cfg.Insight.Dispatcher),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	p := Providers{
		LLM:      claude.New(logger, cfg.LLM),
		Embedder: embedding.New(logger, cfg.Embedding, cfg.Memory.EmbeddingDims),
	}
	if cfg.Insight.Dispatcher == config.DispatcherAsynq {
		p.Queue = asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Insight.RedisAddr})
		defer p.Queue.Close()
	}

	a, err := New(cfg, logger, pool, p)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      a.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			a.Close()
			return fmt.Errorf("app: serve: %w", err)
		}
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	a.Close()

	logger.Info("stopped")
	return nil
}
