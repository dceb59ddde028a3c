// Package scheduler enqueues worker jobs on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/worker"
)

// Scheduler manages scheduled jobs. Jobs are not run on the cron goroutine;
// each tick hands the job to the worker pool.
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
	parser     cron.Parser
}

// New creates a new scheduler. Specs use five fields (minute hour dom month dow)
// or descriptors such as @daily and @every 1h, evaluated in UTC.
func New(pool *worker.Pool) *Scheduler {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		workerPool: pool,
		parser:     parser,
		cron:       cron.New(cron.WithParser(parser), cron.WithLocation(time.UTC)),
	}
}

// Schedule registers job under a cron spec
func (s *Scheduler) Schedule(spec string, job worker.Job) (cron.EntryID, error) {
	sched, err := s.parser.Parse(spec)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", ErrContextParseSpec, spec, err)
	}
	id := s.cron.Schedule(sched, s.enqueue(job))
	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "spec", spec, "entry_id", id)
	return id, nil
}

// Every registers job at a fixed interval. Unlike @every it accepts
// sub-second intervals.
func (s *Scheduler) Every(interval time.Duration, job worker.Job) cron.EntryID {
	return s.cron.Schedule(fixedInterval(interval), s.enqueue(job))
}

// enqueue never blocks the cron loop; a tick that finds the queue full is skipped
func (s *Scheduler) enqueue(job worker.Job) cron.Job {
	return cron.FuncJob(func() {
		if !s.workerPool.TryEnqueue(job) {
			logger.FromContext(context.Background()).Warn(LogMsgTickSkipped)
		}
	})
}

// Next returns the next activation time of an entry, or the zero time if unknown
func (s *Scheduler) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

// Start starts the cron loop
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron loop. Jobs already handed to the pool are not waited for.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

type fixedInterval time.Duration

func (f fixedInterval) Next(t time.Time) time.Time {
	return t.Add(time.Duration(f))
}
