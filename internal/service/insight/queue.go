package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// TaskTypeExtract is the asynq task type carrying one conversation window.
const TaskTypeExtract = "insight:extract"

type extractPayload struct {
	AccountID uuid.UUID                 `json:"account_id"`
	Turns     []domain.ConversationTurn `json:"turns"`
}

// enqueuer is the part of *asynq.Client the queue dispatcher uses.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher enqueues extraction for a separate worker process.
// Tasks are never retried.
type QueueDispatcher struct {
	log    *slog.Logger
	client enqueuer
	queue  string
}

// NewQueueDispatcher creates a QueueDispatcher publishing to queue.
func NewQueueDispatcher(logger *slog.Logger, client enqueuer, queue string) *QueueDispatcher {
	return &QueueDispatcher{
		log:    logger.With("component", "insight_queue"),
		client: client,
		queue:  queue,
	}
}

// Dispatch enqueues the window. Enqueue failures are logged and dropped.
func (d *QueueDispatcher) Dispatch(ctx context.Context, turns []domain.ConversationTurn) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		d.log.WarnContext(ctx, "insight dispatch skipped: no account")
		return
	}

	body, err := json.Marshal(extractPayload{AccountID: accountID, Turns: turns})
	if err != nil {
		d.log.ErrorContext(ctx, "insight payload encode failed", slog.String("error", err.Error()))
		return
	}

	task := asynq.NewTask(TaskTypeExtract, body, asynq.MaxRetry(0), asynq.Queue(d.queue))
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		d.log.ErrorContext(ctx, "insight enqueue failed",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()))
	}
}

// NewTaskHandler returns the worker handler for TaskTypeExtract. Extraction
// outcomes never fail the task; only an undecodable payload does, and it is
// marked as not retryable.
func NewTaskHandler(logger *slog.Logger, ex extractor) asynq.HandlerFunc {
	log := logger.With("component", "insight_worker")
	return func(ctx context.Context, t *asynq.Task) error {
		var p extractPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.ErrorContext(ctx, "insight task payload invalid", slog.String("error", err.Error()))
			return fmt.Errorf("decode %s payload: %v: %w", TaskTypeExtract, err, asynq.SkipRetry)
		}
		if p.AccountID == uuid.Nil {
			return fmt.Errorf("%s payload without account: %w", TaskTypeExtract, asynq.SkipRetry)
		}

		ex.ExtractAndSave(ctxutil.WithAccountID(ctx, p.AccountID), p.Turns)
		return nil
	}
}
