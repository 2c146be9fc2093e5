package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterBlocksBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, 3)
	router := gin.New()
	router.GET("/", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var ok, limited int
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		switch rec.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
		default:
			t.Fatalf("unexpected status %d", rec.Code)
		}
	}

	if ok == 0 || limited == 0 {
		t.Fatalf("expected both allowed and limited requests, got ok=%d limited=%d", ok, limited)
	}
	if ok > 4 {
		t.Errorf("allowed %d requests, burst is 3", ok)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, 1)
	router := gin.New()
	router.GET("/", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	drain := httptest.NewRequest(http.MethodGet, "/", nil)
	drain.RemoteAddr = "192.0.2.1:1234"
	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), drain)
	}

	fresh := httptest.NewRequest(http.MethodGet, "/", nil)
	fresh.RemoteAddr = "192.0.2.2:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, fresh)
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh client got %d, limits must be per IP", rec.Code)
	}
}

func TestRateLimiterSweepsIdleEntriesAndStops(t *testing.T) {
	rl := newRateLimiter(1, 1, 5*time.Millisecond, time.Millisecond)
	defer rl.Stop()

	rl.get("192.0.2.1")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		rl.mu.Lock()
		n := len(rl.limiters)
		rl.mu.Unlock()
		if n == 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	rl.mu.Lock()
	n := len(rl.limiters)
	rl.mu.Unlock()
	if n != 0 {
		t.Fatalf("idle entry not swept, %d limiters remain", n)
	}

	rl.Stop()
	rl.Stop()
}
