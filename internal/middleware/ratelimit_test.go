package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitPerUser(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(userID string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/generations", nil)
		req.RemoteAddr = "198.51.100.10:1234"
		req = req.WithContext(ContextWithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("user-1"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := do("user-1"); code != http.StatusTooManyRequests {
		t.Fatalf("over-limit status = %d, want 429", code)
	}

	// A different user behind the same address keeps their own budget.
	if code := do("user-2"); code != http.StatusOK {
		t.Fatalf("other user status = %d, want 200", code)
	}
}

func TestRateLimitAnonymousFallsBackToIP(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("198.51.100.10:1234"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := do("198.51.100.10:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("same ip status = %d, want 429", code)
	}
	if code := do("203.0.113.9:1234"); code != http.StatusOK {
		t.Fatalf("different ip status = %d, want 200", code)
	}
}

func TestWindowLimiterResetsAndPrunes(t *testing.T) {
	limiter := &windowLimiter{limit: 1, window: time.Minute, slots: make(map[string]*windowSlot)}
	start := time.Now()

	if _, ok := limiter.take("a", start); !ok {
		t.Fatal("first take must succeed")
	}
	retryIn, ok := limiter.take("a", start)
	if ok {
		t.Fatal("second take within the window must fail")
	}
	if retryIn <= 0 || retryIn > time.Minute {
		t.Fatalf("retryIn = %v", retryIn)
	}

	later := start.Add(2 * time.Minute)
	if _, ok := limiter.take("b", later); !ok {
		t.Fatal("take in a new window must succeed")
	}
	if _, stale := limiter.slots["a"]; stale {
		t.Fatal("expired slot not pruned")
	}
}
