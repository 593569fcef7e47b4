package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// slowStore stretches the read/write gap so lost updates would surface.
type slowStore struct {
	Store
	delay time.Duration
}

func (s slowStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	time.Sleep(s.delay)
	return s.Store.Get(ctx, key)
}

func (s slowStore) Put(ctx context.Context, key string, stamps []time.Time) error {
	time.Sleep(s.delay)
	return s.Store.Put(ctx, key, stamps)
}

func TestAllowUnderLimit(t *testing.T) {
	l := New(NewMemoryStore(), 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(context.Background(), "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRejectOverLimit(t *testing.T) {
	l := New(NewMemoryStore(), 3, time.Minute)

	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow(context.Background(), "1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	ok, err := l.Allow(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("Allow error: %v", err)
	}
	if ok {
		t.Fatalf("fourth request within the window should be rejected")
	}
}

func TestRejectedRequestsConsumeNoSlot(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	l := New(NewMemoryStore(), 2, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow(context.Background(), "k")
	l.Allow(context.Background(), "k")

	// Hammering while blocked must not extend the block.
	for i := 0; i < 10; i++ {
		if ok, _ := l.Allow(context.Background(), "k"); ok {
			t.Fatalf("request should be rejected while window is full")
		}
	}

	now = base.Add(61 * time.Second)
	ok, err := l.Allow(context.Background(), "k")
	if err != nil {
		t.Fatalf("Allow error: %v", err)
	}
	if !ok {
		t.Fatalf("request after the window slid should be allowed")
	}
}

func TestWindowSlides(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	l := New(NewMemoryStore(), 3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow(context.Background(), "k"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
		now = now.Add(10 * time.Second)
	}
	// t=30s: first three stamps still inside the window.
	if ok, _ := l.Allow(context.Background(), "k"); ok {
		t.Fatalf("request at t=30s should be rejected")
	}

	// t=65s: the stamp from t=0 has expired.
	now = base.Add(65 * time.Second)
	if ok, _ := l.Allow(context.Background(), "k"); !ok {
		t.Fatalf("request at t=65s should be allowed")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(NewMemoryStore(), 1, time.Minute)

	if ok, _ := l.Allow(context.Background(), "a"); !ok {
		t.Fatalf("first request for key a should be allowed")
	}
	if ok, _ := l.Allow(context.Background(), "a"); ok {
		t.Fatalf("second request for key a should be rejected")
	}
	if ok, _ := l.Allow(context.Background(), "b"); !ok {
		t.Fatalf("first request for key b should be allowed")
	}
}

func TestConcurrentRequestsCannotExceedLimit(t *testing.T) {
	l := New(slowStore{Store: NewMemoryStore(), delay: 2 * time.Millisecond}, 3, time.Minute)

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(context.Background(), "1.2.3.4")
			if err != nil {
				t.Errorf("Allow error: %v", err)
			}
			if ok {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := accepted.Load(); got != 3 {
		t.Fatalf("accepted %d concurrent requests for one key, limit is 3", got)
	}
}

func TestConcurrentKeysProceedIndependently(t *testing.T) {
	l := New(slowStore{Store: NewMemoryStore(), delay: 2 * time.Millisecond}, 1, time.Minute)

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if ok, _ := l.Allow(context.Background(), key); ok {
				accepted.Add(1)
			}
		}(key)
	}
	wg.Wait()

	if got := accepted.Load(); got != 4 {
		t.Fatalf("expected all 4 distinct keys admitted, got %d", got)
	}
}

func TestMemoryStorePrune(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stamps := []time.Time{base, base.Add(10 * time.Second), base.Add(30 * time.Second)}
	if err := s.Put(context.Background(), "k", stamps); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Prune(context.Background(), "k", base.Add(10*time.Second)); err != nil {
		t.Fatalf("Prune error: %v", err)
	}

	got, err := s.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 stamp after prune, got %d", len(got))
	}
	if !got[0].Equal(base.Add(30 * time.Second)) {
		t.Fatalf("unexpected surviving stamp: %v", got[0])
	}
}
