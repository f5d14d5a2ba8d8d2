package memory

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ featureGate = &featureGateMock{}

type featureGateMock struct {
	RequireFeatureFunc func(ctx context.Context, accountID uuid.UUID, feature domain.Feature) error

	calls struct {
		RequireFeature []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Feature   domain.Feature
		}
	}
	lockRequireFeature sync.RWMutex
}

func (mock *featureGateMock) RequireFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) error {
	if mock.RequireFeatureFunc == nil {
		panic("featureGateMock.RequireFeatureFunc: method is nil but featureGate.RequireFeature was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Feature   domain.Feature
	}{Ctx: ctx, AccountID: accountID, Feature: feature}
	mock.lockRequireFeature.Lock()
	mock.calls.RequireFeature = append(mock.calls.RequireFeature, callInfo)
	mock.lockRequireFeature.Unlock()
	return mock.RequireFeatureFunc(ctx, accountID, feature)
}

func (mock *featureGateMock) RequireFeatureCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Feature   domain.Feature
} {
	mock.lockRequireFeature.RLock()
	calls := mock.calls.RequireFeature
	mock.lockRequireFeature.RUnlock()
	return calls
}
