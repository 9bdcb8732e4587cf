package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool(t *testing.T) {
	logger := setupTestLogger()
	queue := NewTaskQueue(10, logger)

	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 5}, logger)
	assert.Equal(t, 5, pool.workerCount)
	assert.Nil(t, pool.errorHandler)

	pool = NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 0}, logger)
	assert.Equal(t, 1, pool.workerCount)

	pool = NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: -5}, nil)
	assert.Equal(t, 1, pool.workerCount)

	assert.Equal(t, 2, DefaultWorkerPoolConfig().WorkerCount)
}

func TestWorkerPoolProcessesAndDrains(t *testing.T) {
	queue := NewTaskQueue(50, nil)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 3}, setupTestLogger())

	var executed atomic.Int32
	for i := 0; i < 20; i++ {
		require.NoError(t, queue.Enqueue(newMockTask(func(ctx context.Context) error {
			executed.Add(1)
			return nil
		})))
	}

	pool.Start()
	pool.Start()
	queue.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Stop(ctx))
	assert.Equal(t, int32(20), executed.Load())
}

func TestWorkerPoolErrorHandler(t *testing.T) {
	queue := NewTaskQueue(10, nil)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 1}, setupTestLogger())

	var mu sync.Mutex
	var failures []error
	pool.SetErrorHandler(func(task Task, err error) {
		mu.Lock()
		failures = append(failures, err)
		mu.Unlock()
	})

	boom := errors.New("boom")
	require.NoError(t, queue.Enqueue(newMockTask(func(ctx context.Context) error { return boom })))
	require.NoError(t, queue.Enqueue(newMockTask(func(ctx context.Context) error { panic("bad task") })))
	require.NoError(t, queue.Enqueue(newMockTask(nil)))

	pool.Start()
	queue.Close()
	require.NoError(t, pool.Stop(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, failures, 2)
	assert.ErrorIs(t, failures[0], boom)
	assert.Contains(t, failures[1].Error(), "panicked")
}

func TestWorkerPoolStopTimeout(t *testing.T) {
	queue := NewTaskQueue(10, nil)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 1}, setupTestLogger())

	started := make(chan struct{})
	require.NoError(t, queue.Enqueue(newMockTask(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})))

	pool.Start()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
