package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

type windowSlot struct {
	count   int
	resetAt time.Time
}

// windowLimiter counts requests per key in fixed windows. Expired slots are
// pruned whenever a new window opens, so the map stays bounded by the number
// of callers active in the current window.
type windowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	slots  map[string]*windowSlot
}

func (l *windowLimiter) take(key string, now time.Time) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok || now.After(slot.resetAt) {
		l.prune(now)
		slot = &windowSlot{resetAt: now.Add(l.window)}
		l.slots[key] = slot
	}
	if slot.count >= l.limit {
		return slot.resetAt.Sub(now), false
	}
	slot.count++
	return 0, true
}

func (l *windowLimiter) prune(now time.Time) {
	for key, slot := range l.slots {
		if now.After(slot.resetAt) {
			delete(l.slots, key)
		}
	}
}

// RateLimit caps requests per caller within a fixed window. Generation
// endpoints sit behind auth, so the authenticated user id is the limit key;
// callers behind one shared proxy IP do not exhaust each other's budget.
// Anonymous requests fall back to the client IP.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	limiter := &windowLimiter{
		limit:  limit,
		window: window,
		slots:  make(map[string]*windowSlot),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := UserIDFromContext(r.Context())
			if key == "" {
				key = ClientIP(r)
			}
			if retryIn, ok := limiter.take(key, time.Now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(retryIn.Seconds())+1))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests, slow down"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
