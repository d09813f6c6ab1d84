package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(perHour int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)}
	l := NewRateLimiter(perHour)
	l.now = clock.now
	return l, clock
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(3)

	for i := 0; i < 3; i++ {
		ok, _ := l.Reserve("10.0.0.1")
		require.True(t, ok, "request %d", i)
	}

	ok, wait := l.Reserve("10.0.0.1")
	assert.False(t, ok)
	assert.InDelta(t, (20 * time.Minute).Seconds(), wait.Seconds(), 1)

	ok, _ = l.Reserve("10.0.0.2")
	assert.True(t, ok, "other clients have their own bucket")

	clock.advance(21 * time.Minute)
	ok, _ = l.Reserve("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_DeniedRequestsDoNotConsume(t *testing.T) {
	l, clock := newTestLimiter(1)

	ok, _ := l.Reserve("a")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		ok, _ = l.Reserve("a")
		require.False(t, ok)
	}

	clock.advance(time.Hour + time.Minute)
	ok, _ = l.Reserve("a")
	assert.True(t, ok)
}

func TestRateLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(10)

	l.Reserve("old")
	clock.advance(50 * time.Minute)
	l.Reserve("recent")
	clock.advance(11 * time.Minute)

	l.Sweep()

	assert.Equal(t, 1, l.Len())
	l.mu.Lock()
	_, ok := l.visitors["recent"]
	l.mu.Unlock()
	assert.True(t, ok)
}

func TestRateLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(2)
	calls := 0
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", nil)
		req.RemoteAddr = "192.0.2.7:51234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rr := send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1800", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), "Too many assistant requests")
	assert.Equal(t, 2, calls)
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewRateLimiter(10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()
	<-done
}

func TestRateLimiter_SpoofedForwardedForSharesBucket(t *testing.T) {
	l, _ := newTestLimiter(2)
	calls := 0
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", nil)
		req.RemoteAddr = "192.0.2.7:51234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, l.Len())
}

func TestRateLimiter_TrustProxies(t *testing.T) {
	l := NewRateLimiter(10)
	require.NoError(t, l.TrustProxies("10.0.0.0/8", "192.0.2.1", "::1"))
	assert.Len(t, l.trusted, 3)

	assert.Error(t, l.TrustProxies("proxy.internal"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		remote    string
		want      string
	}{
		{name: "remote addr", remote: "203.0.113.9:4000", want: "203.0.113.9"},
		{name: "untrusted peer ignores header", forwarded: "198.51.100.1", remote: "203.0.113.9:4000", want: "203.0.113.9"},
		{name: "trusted proxy", forwarded: "198.51.100.1", remote: "10.0.0.1:80", want: "198.51.100.1"},
		{name: "proxy chain", forwarded: "198.51.100.1, 10.0.0.7", remote: "10.0.0.1:80", want: "198.51.100.1"},
		{name: "spoofed leftmost hop", forwarded: "1.2.3.4, 198.51.100.1", remote: "10.0.0.1:80", want: "198.51.100.1"},
		{name: "blank forwarded", forwarded: " , ", remote: "10.0.0.2:80", want: "10.0.0.2"},
		{name: "no port", remote: "unix", want: "unix"},
	}

	l := NewRateLimiter(10)
	require.NoError(t, l.TrustProxies("10.0.0.0/8"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, l.clientIP(req))
		})
	}
}
