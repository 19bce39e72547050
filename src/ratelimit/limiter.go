package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// CounterStore is the shared counter backend. It lives outside the process
// so the limit holds across multiple server instances.
type CounterStore interface {
	// Incr increments the counter at key, sets its expiry, and returns the
	// new count.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// Get returns the counter at key, zero if the key does not exist.
	Get(ctx context.Context, key string) (int64, error)
}

// Limiter enforces a sliding-window request budget per key. The window is
// estimated from two adjacent fixed-window counters, with the previous
// window weighted by how much of it still overlaps the sliding interval.
type Limiter struct {
	store  CounterStore
	limit  int
	window time.Duration
	now    func() time.Time
}

func New(store CounterStore, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records one request for key and reports whether it fits the budget.
// A store error is returned as-is; callers decide the failure policy.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	windowMs := l.window.Milliseconds()
	currWindow := now.UnixMilli() / windowMs

	currKey := fmt.Sprintf("%s:%d", key, currWindow)
	prevKey := fmt.Sprintf("%s:%d", key, currWindow-1)

	// Counters expire after two windows, once they can no longer overlap
	// any sliding interval.
	count, err := l.store.Incr(ctx, currKey, 2*l.window)
	if err != nil {
		return false, err
	}
	prevCount, err := l.store.Get(ctx, prevKey)
	if err != nil {
		return false, err
	}

	elapsed := now.UnixMilli() % windowMs
	prevWeight := float64(windowMs-elapsed) / float64(windowMs)
	estimated := float64(count) + prevWeight*float64(prevCount)

	return estimated <= float64(l.limit), nil
}
