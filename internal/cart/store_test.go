package cart

import (
	"testing"
	"time"
)

func TestStoreAcquireMintsToken(t *testing.T) {
	s := NewStore(30 * time.Minute)

	token, c := s.Acquire("")
	if token == "" {
		t.Fatalf("expected a minted token")
	}
	if c == nil {
		t.Fatalf("expected a cart")
	}

	again, c2 := s.Acquire(token)
	if again != token {
		t.Fatalf("known token should be echoed, got %s", again)
	}
	if c2 != c {
		t.Fatalf("known token should return the same cart")
	}
}

func TestStoreAcquireUnknownTokenStartsFresh(t *testing.T) {
	s := NewStore(30 * time.Minute)

	token, c := s.Acquire("not-a-session")
	if token == "not-a-session" {
		t.Fatalf("unknown tokens must not be adopted")
	}
	if len(c.Items()) != 0 {
		t.Fatalf("fresh session should start empty")
	}
}

func TestStoreDrop(t *testing.T) {
	s := NewStore(30 * time.Minute)

	token, c := s.Acquire("")
	c.AddItem(Item{ID: "caldera-1", Price: 1200})
	s.Drop(token)

	again, c2 := s.Acquire(token)
	if again == token {
		t.Fatalf("dropped token should not resolve")
	}
	if len(c2.Items()) != 0 {
		t.Fatalf("dropped session should not leak its cart")
	}
}

func TestStoreEvictionDropsIdleSessions(t *testing.T) {
	s := NewStore(10 * time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	s.now = func() time.Time { return now }

	stale, _ := s.Acquire("")
	now = base.Add(15 * time.Minute)
	fresh, _ := s.Acquire("")

	// Run one sweep by hand instead of waiting on the ticker.
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()

	if got, _ := s.Acquire(stale); got == stale {
		t.Fatalf("idle session should have been evicted")
	}
	if got, _ := s.Acquire(fresh); got != fresh {
		t.Fatalf("recent session should have survived")
	}
}
