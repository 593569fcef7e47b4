package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Store keeps one cart per session token. Sessions are created lazily and
// evicted after sitting idle for the configured TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Acquire returns the cart for token, creating a fresh session when the
// token is empty or unknown. The returned token identifies the session the
// cart belongs to and must be echoed back to the client.
func (s *Store) Acquire(token string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if sess, ok := s.sessions[token]; ok {
			sess.lastSeen = s.now()
			return token, sess.cart
		}
	}

	token = uuid.NewString()
	sess := &session{cart: &Cart{}, lastSeen: s.now()}
	s.sessions[token] = sess
	return token, sess.cart
}

// Drop forgets the session entirely, typically after a submitted order.
func (s *Store) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// StartEviction removes idle sessions in the background. Returns a stop
// function.
func (s *Store) StartEviction(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				cutoff := s.now().Add(-s.ttl)
				s.mu.Lock()
				for token, sess := range s.sessions {
					if sess.lastSeen.Before(cutoff) {
						delete(s.sessions, token)
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
