package memory

import (
	"context"
	"sync"
)

var _ embedder = &embedderMock{}

type embedderMock struct {
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)

	calls struct {
		Embed []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockEmbed sync.RWMutex
}

func (mock *embedderMock) Embed(ctx context.Context, text string) ([]float32, error) {
	if mock.EmbedFunc == nil {
		panic("embedderMock.EmbedFunc: method is nil but embedder.Embed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, text)
}

func (mock *embedderMock) EmbedCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockEmbed.RLock()
	calls := mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}
