package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps the window state in process memory. Fine for a single
// instance; multiple instances each enforce their own window.
type MemoryStore struct {
	mu     sync.Mutex
	stamps map[string][]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stamps: make(map[string][]time.Time)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamps := s.stamps[key]
	out := make([]time.Time, len(stamps))
	copy(out, stamps)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, stamps []time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(stamps) == 0 {
		delete(s.stamps, key)
		return nil
	}
	stored := make([]time.Time, len(stamps))
	copy(stored, stamps)
	s.stamps[key] = stored
	return nil
}

func (s *MemoryStore) Prune(ctx context.Context, key string, cutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamps, ok := s.stamps[key]
	if !ok {
		return nil
	}
	kept := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(s.stamps, key)
		return nil
	}
	s.stamps[key] = kept
	return nil
}

// StartEviction drops idle keys in the background so the map does not grow
// with every address that ever hit a form. Returns a stop function.
func (s *MemoryStore) StartEviction(interval, maxAge time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-maxAge)
				s.mu.Lock()
				for key, stamps := range s.stamps {
					if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
						delete(s.stamps, key)
					}
				}
				s.mu.Unlock()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
