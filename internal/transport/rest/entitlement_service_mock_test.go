package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
	"sync"
)

var _ entitlementService = &entitlementServiceMock{}

type entitlementServiceMock struct {
	CanUseFeatureFunc  func(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	GetPlanFunc        func(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error)
	TryConsumeCallFunc func(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision
	UsageFunc          func(ctx context.Context, accountID uuid.UUID) (*entitlement.UsageReport, error)

	calls struct {
		CanUseFeature []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Feature   domain.Feature
		}
		GetPlan []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		TryConsumeCall []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			CallType  string
		}
		Usage []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockCanUseFeature  sync.RWMutex
	lockGetPlan        sync.RWMutex
	lockTryConsumeCall sync.RWMutex
	lockUsage          sync.RWMutex
}

func (mock *entitlementServiceMock) CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool {
	if mock.CanUseFeatureFunc == nil {
		panic("entitlementServiceMock.CanUseFeatureFunc: method is nil but entitlementService.CanUseFeature was just called")
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

func (mock *entitlementServiceMock) CanUseFeatureCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Feature   domain.Feature
} {
	mock.lockCanUseFeature.RLock()
	calls := mock.calls.CanUseFeature
	mock.lockCanUseFeature.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) GetPlan(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error) {
	if mock.GetPlanFunc == nil {
		panic("entitlementServiceMock.GetPlanFunc: method is nil but entitlementService.GetPlan was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, accountID)
}

func (mock *entitlementServiceMock) GetPlanCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) TryConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision {
	if mock.TryConsumeCallFunc == nil {
		panic("entitlementServiceMock.TryConsumeCallFunc: method is nil but entitlementService.TryConsumeCall was just called")
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

func (mock *entitlementServiceMock) TryConsumeCallCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	CallType  string
} {
	mock.lockTryConsumeCall.RLock()
	calls := mock.calls.TryConsumeCall
	mock.lockTryConsumeCall.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) Usage(ctx context.Context, accountID uuid.UUID) (*entitlement.UsageReport, error) {
	if mock.UsageFunc == nil {
		panic("entitlementServiceMock.UsageFunc: method is nil but entitlementService.Usage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockUsage.Lock()
	mock.calls.Usage = append(mock.calls.Usage, callInfo)
	mock.lockUsage.Unlock()
	return mock.UsageFunc(ctx, accountID)
}

func (mock *entitlementServiceMock) UsageCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockUsage.RLock()
	calls := mock.calls.Usage
	mock.lockUsage.RUnlock()
	return calls
}
