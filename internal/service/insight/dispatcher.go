package insight

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// Dispatcher hands a conversation window to extraction without waiting for
// it. Dispatch never fails the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, turns []domain.ConversationTurn)
}

// extractor is the part of Service the dispatchers drive.
type extractor interface {
	ExtractAndSave(ctx context.Context, turns []domain.ConversationTurn) int
}

// InProcessDispatcher runs extraction on goroutines of this process, at most
// maxInFlight at a time. Windows arriving while all slots are busy are dropped.
type InProcessDispatcher struct {
	log *slog.Logger
	ex  extractor
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewInProcessDispatcher creates an InProcessDispatcher.
func NewInProcessDispatcher(logger *slog.Logger, ex extractor, maxInFlight int64) *InProcessDispatcher {
	return &InProcessDispatcher{
		log: logger.With("component", "insight_dispatcher"),
		ex:  ex,
		sem: semaphore.NewWeighted(max(maxInFlight, 1)),
	}
}

// Dispatch starts extraction on a context detached from ctx's cancellation
// but carrying its values, so the request finishing does not abort it.
func (d *InProcessDispatcher) Dispatch(ctx context.Context, turns []domain.ConversationTurn) {
	if !d.sem.TryAcquire(1) {
		accountID, _ := ctxutil.AccountIDFromCtx(ctx)
		d.log.WarnContext(ctx, "insight dispatch dropped: too many in flight",
			slog.String("account_id", accountID.String()))
		return
	}

	detached := context.WithoutCancel(ctx)
	window := append([]domain.ConversationTurn(nil), turns...)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		d.ex.ExtractAndSave(detached, window)
	}()
}

// Wait blocks until every started extraction has finished.
func (d *InProcessDispatcher) Wait() {
	d.wg.Wait()
}
