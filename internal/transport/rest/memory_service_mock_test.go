package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"sync"
)

var _ memoryService = &memoryServiceMock{}

type memoryServiceMock struct {
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	RecentFunc func(ctx context.Context, limit int) ([]domain.Memory, error)
	SaveFunc   func(ctx context.Context, input memory.SaveInput) (uuid.UUID, error)
	SearchFunc func(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
		Save []struct {
			Ctx   context.Context
			Input memory.SaveInput
		}
		Search []struct {
			Ctx   context.Context
			Input memory.SearchInput
		}
	}
	lockDelete sync.RWMutex
	lockRecent sync.RWMutex
	lockSave   sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *memoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memoryServiceMock.DeleteFunc: method is nil but memoryService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *memoryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memoryServiceMock) Recent(ctx context.Context, limit int) ([]domain.Memory, error) {
	if mock.RecentFunc == nil {
		panic("memoryServiceMock.RecentFunc: method is nil but memoryService.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *memoryServiceMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

func (mock *memoryServiceMock) Save(ctx context.Context, input memory.SaveInput) (uuid.UUID, error) {
	if mock.SaveFunc == nil {
		panic("memoryServiceMock.SaveFunc: method is nil but memoryService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input memory.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *memoryServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input memory.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *memoryServiceMock) Search(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error) {
	if mock.SearchFunc == nil {
		panic("memoryServiceMock.SearchFunc: method is nil but memoryService.Search was just called")
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

func (mock *memoryServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input memory.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
