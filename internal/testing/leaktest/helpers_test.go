package leaktest

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures Errorf calls so failing checks can be asserted on
type recorder struct {
	testing.TB
	mu     sync.Mutex
	failed []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, fmt.Sprintf(format, args...))
}

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	rec := &recorder{TB: t}
	CheckNoGoroutineLeak(rec, func() {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(5 * time.Millisecond)
			}()
		}
		wg.Wait()
	})
	assert.Empty(t, rec.failed)
}

func TestCheck_WaitsForSlowExit(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	go time.Sleep(100 * time.Millisecond)

	checker.Check(0)
	assert.Empty(t, rec.failed)
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	start := time.Now()
	checker.Check(0)

	assert.Len(t, rec.failed, 1)
	assert.Contains(t, rec.failed[0], "goroutine leak")
	assert.GreaterOrEqual(t, time.Since(start), SettleTimeout)
}

func TestCheck_Tolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
	assert.Empty(t, rec.failed)
}
