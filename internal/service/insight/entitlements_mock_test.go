package insight

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ entitlements = &entitlementsMock{}

type entitlementsMock struct {
	CanUseFeatureFunc  func(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	TryConsumeCallFunc func(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision

	calls struct {
		CanUseFeature []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Feature   domain.Feature
		}
		TryConsumeCall []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			CallType  string
		}
	}
	lockCanUseFeature  sync.RWMutex
	lockTryConsumeCall sync.RWMutex
}

func (mock *entitlementsMock) CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool {
	if mock.CanUseFeatureFunc == nil {
		panic("entitlementsMock.CanUseFeatureFunc: method is nil but entitlements.CanUseFeature was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Feature   domain.Feature
	}{Ctx: ctx, AccountID: accountID, Feature: feature}
	mock.lockCanUseFeature.Lock()
	mock.calls.CanUseFeature = append(mock.calls.CanUseFeature, callInfo)
	mock.lockCanUseFeature.Unlock()
	return mock.CanUseFeatureFunc(ctx, accountID, feature)
}

func (mock *entitlementsMock) CanUseFeatureCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Feature   domain.Feature
} {
	mock.lockCanUseFeature.RLock()
	calls := mock.calls.CanUseFeature
	mock.lockCanUseFeature.RUnlock()
	return calls
}

func (mock *entitlementsMock) TryConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision {
	if mock.TryConsumeCallFunc == nil {
		panic("entitlementsMock.TryConsumeCallFunc: method is nil but entitlements.TryConsumeCall was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		CallType  string
	}{Ctx: ctx, AccountID: accountID, CallType: callType}
	mock.lockTryConsumeCall.Lock()
	mock.calls.TryConsumeCall = append(mock.calls.TryConsumeCall, callInfo)
	mock.lockTryConsumeCall.Unlock()
	return mock.TryConsumeCallFunc(ctx, accountID, callType)
}

func (mock *entitlementsMock) TryConsumeCallCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	CallType  string
} {
	mock.lockTryConsumeCall.RLock()
	calls := mock.calls.TryConsumeCall
	mock.lockTryConsumeCall.RUnlock()
	return calls
}
