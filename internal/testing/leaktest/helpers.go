// Package leaktest checks that tests leave no goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultWait bounds how long Check waits for goroutines to exit
	DefaultWait = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	wait   time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count. Create it after
// any long-lived helpers (caches with janitors, pools) are already running.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		wait:   DefaultWait,
		t:      t,
	}
}

// WithWait changes how long Check polls before failing
func (g *GoroutineChecker) WithWait(d time.Duration) *GoroutineChecker {
	g.wait = d
	return g
}

// Check fails the test if more than tolerance goroutines are still alive once
// the wait has elapsed. Stacks are logged on failure.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := g.settle(g.before + tolerance)
	if leaked := after - g.before; leaked > tolerance {
		buf := make([]byte, 1<<16)
		n := runtime.Stack(buf, true)
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)\n%s",
			g.before, after, leaked, tolerance, buf[:n])
	}
}

func (g *GoroutineChecker) settle(target int) int {
	deadline := time.Now().Add(g.wait)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to
// where it started.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
