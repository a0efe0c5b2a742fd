package debounce

import (
	"context"
	"sync"
	"time"
)

// Group debounces bursts of calls per key. Each caller waits out the quiet
// interval; if a newer call for the same key arrives meanwhile, the older
// caller is superseded and should drop its work. Used on free-text search
// input so keystrokes do not turn into a request storm against the upstream
// dashboard endpoint.
type Group struct {
	mu       sync.Mutex
	interval time.Duration
	seq      map[string]uint64
}

// NewGroup creates a debounce group with the given quiet interval.
func NewGroup(interval time.Duration) *Group {
	return &Group{
		interval: interval,
		seq:      make(map[string]uint64),
	}
}

// Wait blocks for the quiet interval and reports whether the caller is still
// the latest for key. A false return means a newer call superseded this one
// while it was waiting. Cancelling ctx also returns false.
func (g *Group) Wait(ctx context.Context, key string) bool {
	g.mu.Lock()
	g.seq[key]++
	token := g.seq[key]
	g.mu.Unlock()

	timer := time.NewTimer(g.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return false
	}

	g.mu.Lock()
	latest := g.seq[key]
	g.mu.Unlock()
	return token == latest
}
