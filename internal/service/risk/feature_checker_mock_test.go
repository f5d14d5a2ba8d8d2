package risk

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"sync"
)

var _ featureChecker = &featureCheckerMock{}

type featureCheckerMock struct {
	CanUseFeatureFunc func(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool

	calls struct {
		CanUseFeature []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Feature   domain.Feature
		}
	}
	lockCanUseFeature sync.RWMutex
}

func (mock *featureCheckerMock) CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool {
	if mock.CanUseFeatureFunc == nil {
		panic("featureCheckerMock.CanUseFeatureFunc: method is nil but featureChecker.CanUseFeature was just called")
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

func (mock *featureCheckerMock) CanUseFeatureCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Feature   domain.Feature
} {
	mock.lockCanUseFeature.RLock()
	calls := mock.calls.CanUseFeature
	mock.lockCanUseFeature.RUnlock()
	return calls
}
