package insight

import (
	"context"
	"github.com/hibiken/asynq"
	"sync"
)

var _ enqueuer = &enqueuerMock{}

type enqueuerMock struct {
	EnqueueContextFunc func(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)

	calls struct {
		EnqueueContext []struct {
			Ctx  context.Context
			Task *asynq.Task
			Opts []asynq.Option
		}
	}
	lockEnqueueContext sync.RWMutex
}

func (mock *enqueuerMock) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if mock.EnqueueContextFunc == nil {
		panic("enqueuerMock.EnqueueContextFunc: method is nil but enqueuer.EnqueueContext was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Task *asynq.Task
		Opts []asynq.Option
	}{Ctx: ctx, Task: task, Opts: opts}
	mock.lockEnqueueContext.Lock()
	mock.calls.EnqueueContext = append(mock.calls.EnqueueContext, callInfo)
	mock.lockEnqueueContext.Unlock()
	return mock.EnqueueContextFunc(ctx, task, opts...)
}

func (mock *enqueuerMock) EnqueueContextCalls() []struct {
	Ctx  context.Context
	Task *asynq.Task
	Opts []asynq.Option
} {
	mock.lockEnqueueContext.RLock()
	calls := mock.calls.EnqueueContext
	mock.lockEnqueueContext.RUnlock()
	return calls
}
