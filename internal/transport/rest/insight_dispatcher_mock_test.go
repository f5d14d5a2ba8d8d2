package rest

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ insightDispatcher = &insightDispatcherMock{}

type insightDispatcherMock struct {
	DispatchFunc func(ctx context.Context, turns []domain.ConversationTurn)

	calls struct {
		Dispatch []struct {
			Ctx   context.Context
			Turns []domain.ConversationTurn
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *insightDispatcherMock) Dispatch(ctx context.Context, turns []domain.ConversationTurn) {
	if mock.DispatchFunc == nil {
		panic("insightDispatcherMock.DispatchFunc: method is nil but insightDispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Turns []domain.ConversationTurn
	}{Ctx: ctx, Turns: turns}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	mock.DispatchFunc(ctx, turns)
}

func (mock *insightDispatcherMock) DispatchCalls() []struct {
	Ctx   context.Context
	Turns []domain.ConversationTurn
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
