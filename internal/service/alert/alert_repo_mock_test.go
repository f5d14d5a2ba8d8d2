package alert

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ alertRepo = &alertRepoMock{}

type alertRepoMock struct {
	CountUnreadFunc func(ctx context.Context, accountID uuid.UUID) (int, error)
	DismissFunc     func(ctx context.Context, accountID uuid.UUID, id uuid.UUID) error
	ListFunc        func(ctx context.Context, accountID uuid.UUID, filter domain.AlertListFilter) ([]domain.RiskAlert, error)
	MarkReadFunc    func(ctx context.Context, accountID uuid.UUID, id uuid.UUID) error

	calls struct {
		CountUnread []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Dismiss []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			ID        uuid.UUID
		}
		List []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Filter    domain.AlertListFilter
		}
		MarkRead []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			ID        uuid.UUID
		}
	}
	lockCountUnread sync.RWMutex
	lockDismiss     sync.RWMutex
	lockList        sync.RWMutex
	lockMarkRead    sync.RWMutex
}

func (mock *alertRepoMock) CountUnread(ctx context.Context, accountID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("alertRepoMock.CountUnreadFunc: method is nil but alertRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, accountID)
}

func (mock *alertRepoMock) CountUnreadCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *alertRepoMock) Dismiss(ctx context.Context, accountID uuid.UUID, id uuid.UUID) error {
	if mock.DismissFunc == nil {
		panic("alertRepoMock.DismissFunc: method is nil but alertRepo.Dismiss was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		ID        uuid.UUID
	}{Ctx: ctx, AccountID: accountID, ID: id}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, accountID, id)
}

func (mock *alertRepoMock) DismissCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	ID        uuid.UUID
} {
	mock.lockDismiss.RLock()
	calls := mock.calls.Dismiss
	mock.lockDismiss.RUnlock()
	return calls
}

func (mock *alertRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.AlertListFilter) ([]domain.RiskAlert, error) {
	if mock.ListFunc == nil {
		panic("alertRepoMock.ListFunc: method is nil but alertRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Filter    domain.AlertListFilter
	}{Ctx: ctx, AccountID: accountID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, accountID, filter)
}

func (mock *alertRepoMock) ListCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Filter    domain.AlertListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *alertRepoMock) MarkRead(ctx context.Context, accountID uuid.UUID, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("alertRepoMock.MarkReadFunc: method is nil but alertRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		ID        uuid.UUID
	}{Ctx: ctx, AccountID: accountID, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, accountID, id)
}

func (mock *alertRepoMock) MarkReadCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	ID        uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
