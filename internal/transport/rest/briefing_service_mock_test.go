package rest

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/briefing"
	"sync"
)

var _ briefingService = &briefingServiceMock{}

type briefingServiceMock struct {
	ComposeFunc func(ctx context.Context, input briefing.ComposeInput) (*domain.Briefing, error)

	calls struct {
		Compose []struct {
			Ctx   context.Context
			Input briefing.ComposeInput
		}
	}
	lockCompose sync.RWMutex
}

func (mock *briefingServiceMock) Compose(ctx context.Context, input briefing.ComposeInput) (*domain.Briefing, error) {
	if mock.ComposeFunc == nil {
		panic("briefingServiceMock.ComposeFunc: method is nil but briefingService.Compose was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input briefing.ComposeInput
	}{Ctx: ctx, Input: input}
	mock.lockCompose.Lock()
	mock.calls.Compose = append(mock.calls.Compose, callInfo)
	mock.lockCompose.Unlock()
	return mock.ComposeFunc(ctx, input)
}

func (mock *briefingServiceMock) ComposeCalls() []struct {
	Ctx   context.Context
	Input briefing.ComposeInput
} {
	mock.lockCompose.RLock()
	calls := mock.calls.Compose
	mock.lockCompose.RUnlock()
	return calls
}
