package insight

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"sync"
)

var _ memorySaver = &memorySaverMock{}

type memorySaverMock struct {
	SaveFunc func(ctx context.Context, input memory.SaveInput) (uuid.UUID, error)

	calls struct {
		Save []struct {
			Ctx   context.Context
			Input memory.SaveInput
		}
	}
	lockSave sync.RWMutex
}

func (mock *memorySaverMock) Save(ctx context.Context, input memory.SaveInput) (uuid.UUID, error) {
	if mock.SaveFunc == nil {
		panic("memorySaverMock.SaveFunc: method is nil but memorySaver.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input memory.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *memorySaverMock) SaveCalls() []struct {
	Ctx   context.Context
	Input memory.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
