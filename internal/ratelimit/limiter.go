// Package ratelimit provides fixed-window request limiters keyed by caller.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Count     int
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) Decision
}

func decide(count, limit int, resetAt time.Time) Decision {
	return Decision{
		Allowed:   count <= limit,
		Count:     count,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   resetAt,
	}
}

// ---------------------------------------------------------------------------
// In-memory
// ---------------------------------------------------------------------------

// Memory keeps counters in process memory. Suitable for a single instance.
type Memory struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	items  map[string]window

	// expired windows are pruned at most once per window length
	nextSweep time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// NewMemory creates an in-memory limiter allowing limit requests per window.
func NewMemory(limit int, win time.Duration) *Memory {
	if limit <= 0 {
		limit = 1
	}
	if win <= 0 {
		win = time.Minute
	}
	return &Memory{
		limit:  limit,
		window: win,
		now:    time.Now,
		items:  make(map[string]window),
	}
}

// Allow counts one request for key.
func (l *Memory) Allow(_ context.Context, key string) Decision {
	now := l.now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	if !now.Before(l.nextSweep) {
		l.cleanup(now)
		l.nextSweep = now.Add(l.window)
	}
	curr, ok := l.items[key]
	if !ok || !now.Before(curr.resetAt) {
		curr = window{resetAt: now.Add(l.window)}
	}
	curr.count++
	l.items[key] = curr

	return decide(curr.count, l.limit, curr.resetAt)
}

func (l *Memory) cleanup(now time.Time) {
	for k, v := range l.items {
		if !now.Before(v.resetAt) {
			delete(l.items, k)
		}
	}
}
