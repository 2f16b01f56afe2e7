package service

import (
	"sync"
	"time"
)

// cooldownTracker remembers when each actor last completed a manual run.
// Entries live for the lifetime of the process.
type cooldownTracker struct {
	window time.Duration

	mu   sync.Mutex
	last map[string]time.Time
}

func newCooldownTracker(window time.Duration) *cooldownTracker {
	return &cooldownTracker{window: window, last: make(map[string]time.Time)}
}

// remaining returns the whole seconds actor still has to wait at now, or 0
// when a run is allowed.
func (c *cooldownTracker) remaining(actor string, now time.Time) int {
	if c.window <= 0 {
		return 0
	}

	c.mu.Lock()
	last, ok := c.last[actor]
	c.mu.Unlock()
	if !ok {
		return 0
	}

	elapsed := now.Sub(last)
	if elapsed >= c.window {
		return 0
	}

	left := int(c.window.Seconds()) - int(elapsed.Seconds())
	return max(left, 1)
}

func (c *cooldownTracker) mark(actor string, at time.Time) {
	c.mu.Lock()
	c.last[actor] = at
	c.mu.Unlock()
}
