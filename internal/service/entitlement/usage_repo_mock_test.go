package entitlement

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
	"time"
)

var _ usageRepo = &usageRepoMock{}

type usageRepoMock struct {
	DeleteBeforeFunc     func(ctx context.Context, day time.Time) (int, error)
	GetFunc              func(ctx context.Context, accountID uuid.UUID, day time.Time) (*domain.UsageCounter, error)
	IncrementIfBelowFunc func(ctx context.Context, accountID uuid.UUID, day time.Time, callType string, limit int) (int, bool, error)

	calls struct {
		DeleteBefore []struct {
			Ctx context.Context
			Day time.Time
		}
		Get []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Day       time.Time
		}
		IncrementIfBelow []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Day       time.Time
			CallType  string
			Limit     int
		}
	}
	lockDeleteBefore     sync.RWMutex
	lockGet              sync.RWMutex
	lockIncrementIfBelow sync.RWMutex
}

func (mock *usageRepoMock) DeleteBefore(ctx context.Context, day time.Time) (int, error) {
	if mock.DeleteBeforeFunc == nil {
		panic("usageRepoMock.DeleteBeforeFunc: method is nil but usageRepo.DeleteBefore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockDeleteBefore.Lock()
	mock.calls.DeleteBefore = append(mock.calls.DeleteBefore, callInfo)
	mock.lockDeleteBefore.Unlock()
	return mock.DeleteBeforeFunc(ctx, day)
}

func (mock *usageRepoMock) DeleteBeforeCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockDeleteBefore.RLock()
	calls := mock.calls.DeleteBefore
	mock.lockDeleteBefore.RUnlock()
	return calls
}

func (mock *usageRepoMock) Get(ctx context.Context, accountID uuid.UUID, day time.Time) (*domain.UsageCounter, error) {
	if mock.GetFunc == nil {
		panic("usageRepoMock.GetFunc: method is nil but usageRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Day       time.Time
	}{Ctx: ctx, AccountID: accountID, Day: day}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, accountID, day)
}

func (mock *usageRepoMock) GetCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Day       time.Time
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *usageRepoMock) IncrementIfBelow(ctx context.Context, accountID uuid.UUID, day time.Time, callType string, limit int) (int, bool, error) {
	if mock.IncrementIfBelowFunc == nil {
		panic("usageRepoMock.IncrementIfBelowFunc: method is nil but usageRepo.IncrementIfBelow was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Day       time.Time
		CallType  string
		Limit     int
	}{Ctx: ctx, AccountID: accountID, Day: day, CallType: callType, Limit: limit}
	mock.lockIncrementIfBelow.Lock()
	mock.calls.IncrementIfBelow = append(mock.calls.IncrementIfBelow, callInfo)
	mock.lockIncrementIfBelow.Unlock()
	return mock.IncrementIfBelowFunc(ctx, accountID, day, callType, limit)
}

func (mock *usageRepoMock) IncrementIfBelowCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Day       time.Time
	CallType  string
	Limit     int
} {
	mock.lockIncrementIfBelow.RLock()
	calls := mock.calls.IncrementIfBelow
	mock.lockIncrementIfBelow.RUnlock()
	return calls
}
