package testutil

import (
	"context"
	"time"
)

// TestContext returns a context that times out after 10 seconds, enough
// headroom for containerized database calls.
func TestContext() (context.Context, context.CancelFunc) {
	return TestContextWithTimeout(10 * time.Second)
}

// TestContextWithTimeout returns a context with the given timeout.
func TestContextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
