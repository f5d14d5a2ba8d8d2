package rest

import (
	"context"
	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/risk"
	"sync"
)

var _ riskService = &riskServiceMock{}

type riskServiceMock struct {
	AnalyzeFunc func(ctx context.Context, input risk.AnalyzeInput) ([]domain.RiskAlert, error)

	calls struct {
		Analyze []struct {
			Ctx   context.Context
			Input risk.AnalyzeInput
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *riskServiceMock) Analyze(ctx context.Context, input risk.AnalyzeInput) ([]domain.RiskAlert, error) {
	if mock.AnalyzeFunc == nil {
		panic("riskServiceMock.AnalyzeFunc: method is nil but riskService.Analyze was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input risk.AnalyzeInput
	}{Ctx: ctx, Input: input}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, input)
}

func (mock *riskServiceMock) AnalyzeCalls() []struct {
	Ctx   context.Context
	Input risk.AnalyzeInput
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
