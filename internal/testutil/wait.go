package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds contexts and polling when callers pass zero.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at test cleanup or after timeout,
// whichever comes first. It never outlives the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls ready every interval until it returns true, failing the test with msg
// after timeout.
func Eventually(t testing.TB, timeout, interval time.Duration, ready func() bool, msg string) {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !ready() {
		select {
		case <-deadline.C:
			if msg == "" {
				msg = "condition not met before timeout"
			}
			t.Fatalf("%s", msg)
		case <-ticker.C:
		}
	}
}
