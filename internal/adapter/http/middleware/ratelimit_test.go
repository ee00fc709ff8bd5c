package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 2)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatalf("burst of 2 should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("third request inside the same instant should be limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("other clients keep their own bucket")
	}

	l.now = func() time.Time { return base.Add(time.Second) }
	if !l.Allow("10.0.0.1") {
		t.Fatalf("bucket should refill after one second")
	}
}

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	if got := l.size(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	l.now = func() time.Time { return base.Add(limiterIdleTTL + time.Minute) }
	l.Allow("10.0.0.3")
	if got := l.size(); got != 1 {
		t.Fatalf("expected idle clients evicted, got %d", got)
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(rate.Limit(0.001), 1))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
}
