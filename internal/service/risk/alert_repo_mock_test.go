package risk

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ alertRepo = &alertRepoMock{}

type alertRepoMock struct {
	CreateBatchFunc func(ctx context.Context, alerts []domain.RiskAlert) error

	calls struct {
		CreateBatch []struct {
			Ctx    context.Context
			Alerts []domain.RiskAlert
		}
	}
	lockCreateBatch sync.RWMutex
}

func (mock *alertRepoMock) CreateBatch(ctx context.Context, alerts []domain.RiskAlert) error {
	if mock.CreateBatchFunc == nil {
		panic("alertRepoMock.CreateBatchFunc: method is nil but alertRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Alerts []domain.RiskAlert
	}{Ctx: ctx, Alerts: alerts}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, alerts)
}

func (mock *alertRepoMock) CreateBatchCalls() []struct {
	Ctx    context.Context
	Alerts []domain.RiskAlert
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}
