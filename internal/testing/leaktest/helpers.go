// Package leaktest checks that background goroutines started by a test are
// gone once the code under test has been stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// SettleTimeout bounds how long Check waits for goroutines to exit
const SettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker remembers the goroutine count at creation
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines survive past SettleTimeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, SettleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d\n%s",
			g.before, after, leaked, tolerance, stacks())
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to its starting value
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most target goroutines remain or timeout elapses,
// returning the last observed count
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

func stacks() string {
	buf := make([]byte, 64<<10)
	return string(buf[:runtime.Stack(buf, true)])
}
