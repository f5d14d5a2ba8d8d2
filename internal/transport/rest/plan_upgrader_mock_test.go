package rest

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
	"sync"
)

var _ planUpgrader = &planUpgraderMock{}

type planUpgraderMock struct {
	UpgradePlanFunc func(ctx context.Context, input entitlement.UpgradePlanInput) (*domain.Plan, error)

	calls struct {
		UpgradePlan []struct {
			Ctx   context.Context
			Input entitlement.UpgradePlanInput
		}
	}
	lockUpgradePlan sync.RWMutex
}

func (mock *planUpgraderMock) UpgradePlan(ctx context.Context, input entitlement.UpgradePlanInput) (*domain.Plan, error) {
	if mock.UpgradePlanFunc == nil {
		panic("planUpgraderMock.UpgradePlanFunc: method is nil but planUpgrader.UpgradePlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input entitlement.UpgradePlanInput
	}{Ctx: ctx, Input: input}
	mock.lockUpgradePlan.Lock()
	mock.calls.UpgradePlan = append(mock.calls.UpgradePlan, callInfo)
	mock.lockUpgradePlan.Unlock()
	return mock.UpgradePlanFunc(ctx, input)
}

func (mock *planUpgraderMock) UpgradePlanCalls() []struct {
	Ctx   context.Context
	Input entitlement.UpgradePlanInput
} {
	mock.lockUpgradePlan.RLock()
	calls := mock.calls.UpgradePlan
	mock.lockUpgradePlan.RUnlock()
	return calls
}
