package worker

import (
	"context"
	"sync"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named is implemented by jobs that want a name in the logs
type Named interface {
	Name() string
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool. Each job runs under DefaultJobTimeout.
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// WithJobTimeout overrides the per-job deadline
func (p *Pool) WithJobTimeout(d time.Duration) *Pool {
	if d > 0 {
		p.jobTimeout = d
	}
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker is the worker loop
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(id, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(id int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

	log := logger.FromContext(ctx).With("worker", id, "job", jobName(job))
	start := time.Now()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err, "duration", time.Since(start))
		return
	}
	log.Debug(LogMsgWorkerJobDone, "duration", time.Since(start))
}

// Enqueue adds a job to the queue, blocking while it is full.
// It returns false once the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	}
}

// TryEnqueue adds a job without blocking. It returns false if the queue is full
// or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgWorkerQueueFull, "job", jobName(job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish.
// Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return "anonymous"
}
