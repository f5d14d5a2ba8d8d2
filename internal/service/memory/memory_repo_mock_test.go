package memory

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ memoryRepo = &memoryRepoMock{}

type memoryRepoMock struct {
	CreateFunc func(ctx context.Context, m domain.Memory) error
	DeleteFunc func(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (bool, error)
	RecentFunc func(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Memory, error)
	SearchFunc func(ctx context.Context, accountID uuid.UUID, query []float32, filter domain.MemorySearchFilter) ([]domain.ScoredMemory, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   domain.Memory
		}
		Delete []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			ID        uuid.UUID
		}
		Recent []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Limit     int
		}
		Search []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Query     []float32
			Filter    domain.MemorySearchFilter
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockRecent sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *memoryRepoMock) Create(ctx context.Context, m domain.Memory) error {
	if mock.CreateFunc == nil {
		panic("memoryRepoMock.CreateFunc: method is nil but memoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.Memory
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   domain.Memory
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *memoryRepoMock) Delete(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("memoryRepoMock.DeleteFunc: method is nil but memoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		ID        uuid.UUID
	}{Ctx: ctx, AccountID: accountID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, accountID, id)
}

func (mock *memoryRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	ID        uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memoryRepoMock) Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Memory, error) {
	if mock.RecentFunc == nil {
		panic("memoryRepoMock.RecentFunc: method is nil but memoryRepo.Recent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Limit     int
	}{Ctx: ctx, AccountID: accountID, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, accountID, limit)
}

func (mock *memoryRepoMock) RecentCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Limit     int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

func (mock *memoryRepoMock) Search(ctx context.Context, accountID uuid.UUID, query []float32, filter domain.MemorySearchFilter) ([]domain.ScoredMemory, error) {
	if mock.SearchFunc == nil {
		panic("memoryRepoMock.SearchFunc: method is nil but memoryRepo.Search was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Query     []float32
		Filter    domain.MemorySearchFilter
	}{Ctx: ctx, AccountID: accountID, Query: query, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, accountID, query, filter)
}

func (mock *memoryRepoMock) SearchCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Query     []float32
	Filter    domain.MemorySearchFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
