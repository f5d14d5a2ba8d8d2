package briefing

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"sync"
)

var _ memorySearcher = &memorySearcherMock{}

type memorySearcherMock struct {
	SearchFunc func(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Input memory.SearchInput
		}
	}
	lockSearch sync.RWMutex
}

func (mock *memorySearcherMock) Search(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error) {
	if mock.SearchFunc == nil {
		panic("memorySearcherMock.SearchFunc: method is nil but memorySearcher.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input memory.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *memorySearcherMock) SearchCalls() []struct {
	Ctx   context.Context
	Input memory.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
