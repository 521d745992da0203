package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterIsPerClient(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 2)
	now := time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("expected burst of two")
	}
	if rl.Allow("a") {
		t.Fatal("expected third request to be limited")
	}
	if !rl.Allow("b") {
		t.Fatal("expected separate client bucket")
	}
	now = now.Add(time.Second)
	if !rl.Allow("a") {
		t.Fatal("expected refill after one second")
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 1)
	now := time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(time.Hour)
	rl.Allow("b")
	if _, ok := rl.limiters["a"]; ok {
		t.Fatal("expected idle client to be evicted")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	h := RateLimit(NewRateLimiter(0.5, 1))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/search/suggestions?q=bi", nil)
	req.RemoteAddr = "203.0.113.9:5000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", rr.Code)
	}

	req.RemoteAddr = "203.0.113.9:5001"
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	if got := rr.Header().Get("Retry-After"); got != "2" {
		t.Fatalf("Retry-After = %q, want 2", got)
	}
}

func TestRateLimitNilLimiterPassesThrough(t *testing.T) {
	t.Parallel()

	h := RateLimit(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestClientAddr(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	if got := ClientAddr(req); got != "2001:db8::1" {
		t.Fatalf("ClientAddr() = %q", got)
	}
	req.RemoteAddr = "unix"
	if got := ClientAddr(req); got != "unix" {
		t.Fatalf("ClientAddr() = %q", got)
	}
}
