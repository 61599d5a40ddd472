package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/locnews"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultGroup is the consumer group used for crawl tasks.
	DefaultGroup = "locnews"

	// DefaultBlock is how long a read waits for new tasks.
	DefaultBlock = 5 * time.Second
)

// Task asks a worker to ingest one feed source.
type Task struct {
	URL      string `json:"url"`
	SourceID string `json:"source_id"`
	Name     string `json:"name"`
}

// TaskHandler processes one task. Errors are logged; the task is still
// acknowledged.
type TaskHandler func(ctx context.Context, task Task) error

// TaskQueue enqueues and consumes crawl tasks on a Redis stream.
type TaskQueue struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	block    time.Duration
	logger   *slog.Logger
}

// TaskQueueConfig holds configuration for a TaskQueue.
type TaskQueueConfig struct {
	Stream   string        // Stream name (default TaskStream)
	Group    string        // Consumer group (default DefaultGroup)
	Consumer string        // Consumer name, required for Consume
	Block    time.Duration // Read block timeout (0 = default)
	Logger   *slog.Logger  // nil discards
}

// NewTaskQueue creates a TaskQueue.
func NewTaskQueue(client *redis.Client, cfg TaskQueueConfig) *TaskQueue {
	q := &TaskQueue{
		client:   client,
		stream:   cfg.Stream,
		group:    cfg.Group,
		consumer: cfg.Consumer,
		block:    cfg.Block,
		logger:   cfg.Logger,
	}
	if q.stream == "" {
		q.stream = TaskStream
	}
	if q.group == "" {
		q.group = DefaultGroup
	}
	if q.block <= 0 {
		q.block = DefaultBlock
	}
	if q.logger == nil {
		q.logger = slog.New(slog.DiscardHandler)
	}
	return q
}

// Enqueue appends a task to the stream.
func (q *TaskQueue) Enqueue(ctx context.Context, task Task) error {
	if task.URL == "" {
		return locnews.Errorf(locnews.EINVALID, "task URL required")
	}
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to encode task: %w", err)
	}
	return q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{payloadField: string(body)},
	}).Err()
}

// Consume reads tasks until ctx is cancelled, calling handle for each.
// Handled, failed and malformed messages are all acknowledged so none is
// redelivered. Returns nil on cancellation.
func (q *TaskQueue) Consume(ctx context.Context, handle TaskHandler) error {
	if q.consumer == "" {
		return locnews.Errorf(locnews.EINVALID, "consumer name required")
	}
	if err := q.createGroup(ctx); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.group,
			Consumer: q.consumer,
			Streams:  []string{q.stream, ">"},
			Count:    1,
			Block:    q.block,
		}).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read from stream %s: %w", q.stream, err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				q.process(ctx, msg, handle)
			}
		}
	}
}

func (q *TaskQueue) process(ctx context.Context, msg redis.XMessage, handle TaskHandler) {
	task, err := decodeTask(msg)
	if err != nil {
		q.logger.Error("malformed task", "id", msg.ID, "err", err)
	} else {
		q.logger.Info("processing task", "id", msg.ID, "name", task.Name, "url", task.URL)
		if err := handle(ctx, task); err != nil {
			q.logger.Error("task failed", "id", msg.ID, "url", task.URL, "err", err)
		}
	}

	// Ack even when ctx was cancelled during the handler.
	ackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), connectionTimeout)
	defer cancel()
	if err := q.client.XAck(ackCtx, q.stream, q.group, msg.ID).Err(); err != nil {
		q.logger.Error("ack failed", "id", msg.ID, "err", err)
	}
}

func (q *TaskQueue) createGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	return nil
}

func decodeTask(msg redis.XMessage) (Task, error) {
	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		return Task{}, errors.New("missing payload")
	}
	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return Task{}, fmt.Errorf("invalid payload: %w", err)
	}
	if task.URL == "" {
		return Task{}, errors.New("no URL in task")
	}
	return task, nil
}
