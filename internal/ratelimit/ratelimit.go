// Package ratelimit implements the per-caller sliding-window limits applied
// to the public form endpoints. The window state lives behind the Store
// interface so a shared backend (redis) can replace process memory without
// touching call sites.
package ratelimit

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// Store holds the accepted-request timestamps per key. Implementations must
// be safe for concurrent use.
type Store interface {
	// Get returns the recorded timestamps for key, oldest first. A missing
	// key returns an empty slice.
	Get(ctx context.Context, key string) ([]time.Time, error)
	// Put replaces the recorded timestamps for key.
	Put(ctx context.Context, key string, stamps []time.Time) error
	// Prune drops every timestamp at or before cutoff for key.
	Prune(ctx context.Context, key string, cutoff time.Time) error
}

// lockStripes bounds the lock table; keys hashing to the same stripe share a
// lock, which only costs some false contention.
const lockStripes = 64

type Limiter struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
	locks  [lockStripes]sync.Mutex
}

func New(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether a request under key may proceed. A slot is only
// recorded when the request is admitted, so rejected calls never consume
// capacity.
//
// The prune, read and write against the Store are not one atomic operation,
// so calls for the same key are serialized here. Without this, concurrent
// requests read the same count and the per-key limit invariant breaks.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	lock := l.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	if err := l.store.Prune(ctx, key, cutoff); err != nil {
		return false, err
	}
	stamps, err := l.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if len(stamps) >= l.limit {
		return false, nil
	}

	stamps = append(stamps, now)
	if err := l.store.Put(ctx, key, stamps); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Limiter) lockFor(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &l.locks[h.Sum32()%lockStripes]
}

func (l *Limiter) Window() time.Duration {
	return l.window
}
