package briefing

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ entitlements = &entitlementsMock{}

type entitlementsMock struct {
	CanUseFeatureFunc func(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	ConsumeCallFunc   func(ctx context.Context, accountID uuid.UUID, callType string) error

	calls struct {
		CanUseFeature []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Feature   domain.Feature
		}
		ConsumeCall []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			CallType  string
		}
	}
	lockCanUseFeature sync.RWMutex
	lockConsumeCall   sync.RWMutex
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

func (mock *entitlementsMock) ConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) error {
	if mock.ConsumeCallFunc == nil {
		panic("entitlementsMock.ConsumeCallFunc: method is nil but entitlements.ConsumeCall was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		CallType  string
	}{Ctx: ctx, AccountID: accountID, CallType: callType}
	mock.lockConsumeCall.Lock()
	mock.calls.ConsumeCall = append(mock.calls.ConsumeCall, callInfo)
	mock.lockConsumeCall.Unlock()
	return mock.ConsumeCallFunc(ctx, accountID, callType)
}

func (mock *entitlementsMock) ConsumeCallCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	CallType  string
} {
	mock.lockConsumeCall.RLock()
	calls := mock.calls.ConsumeCall
	mock.lockConsumeCall.RUnlock()
	return calls
}
