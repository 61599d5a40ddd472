package main_test

import (
	"bytes"
	"context"
	"sync"

	main "github.com/fwojciec/locnews/cmd/locnews"
	locredis "github.com/fwojciec/locnews/redis"
)

// newDeps returns dependencies writing to fresh buffers.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

var _ main.TaskQueue = (*taskQueue)(nil)

// taskQueue records enqueued tasks and replays them to Consume.
type taskQueue struct {
	mu        sync.Mutex
	tasks     []locredis.Task
	enqueueFn func(task locredis.Task) error
}

func (q *taskQueue) Enqueue(_ context.Context, task locredis.Task) error {
	if q.enqueueFn != nil {
		if err := q.enqueueFn(task); err != nil {
			return err
		}
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *taskQueue) Consume(ctx context.Context, handle locredis.TaskHandler) error {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		// Failed tasks are dropped, as the Redis queue acks them.
		_ = handle(ctx, task)
	}
	return nil
}
