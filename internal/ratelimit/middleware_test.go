package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	l := New(NewMemoryStore(), 3, time.Minute)
	handler := l.Middleware(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		if rec := do(); rec.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rec.Code)
		}
	}
	rec := do()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("fourth request: got status %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Too many requests") {
		t.Fatalf("unexpected 429 body: %s", rec.Body.String())
	}
}

func TestMiddlewareKeysByClientIP(t *testing.T) {
	l := New(NewMemoryStore(), 1, time.Minute)
	handler := l.Middleware(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
		req.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("first caller: got %d, want 200", code)
	}
	if code := do("203.0.113.7"); code != http.StatusTooManyRequests {
		t.Fatalf("repeat caller: got %d, want 429", code)
	}
	if code := do("203.0.113.8"); code != http.StatusOK {
		t.Fatalf("different caller: got %d, want 200", code)
	}
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	return nil, errors.New("store down")
}
func (failingStore) Put(ctx context.Context, key string, stamps []time.Time) error {
	return errors.New("store down")
}
func (failingStore) Prune(ctx context.Context, key string, cutoff time.Time) error {
	return errors.New("store down")
}

func TestMiddlewareFailsOpenOnStoreError(t *testing.T) {
	l := New(failingStore{}, 1, time.Minute)
	handler := l.Middleware(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
	req.RemoteAddr = "203.0.113.7:40000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("store failure should fail open, got %d", rec.Code)
	}
}
