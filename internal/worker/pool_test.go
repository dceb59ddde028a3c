package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type blockingJob struct {
	started chan struct{}
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-j.release
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start()
	defer pool.Stop()

	blocker := &blockingJob{started: make(chan struct{}), release: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	<-blocker.started

	var executed int32
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	close(blocker.release)
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_JobGetsDeadlineAndRequestID(t *testing.T) {
	pool := NewPool(1, 1).WithJobTimeout(time.Second)
	pool.Start()
	defer pool.Stop()

	seen := make(chan context.Context, 1)
	pool.Enqueue(jobFunc(func(ctx context.Context) error {
		seen <- ctx
		return nil
	}))

	select {
	case ctx := <-seen:
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.NotEmpty(t, logger.GetRequestID(ctx))
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestPool_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, 4)
		pool.Start()
		pool.Stop()
	})
}

type jobFunc func(ctx context.Context) error

func (f jobFunc) Process(ctx context.Context) error { return f(ctx) }
