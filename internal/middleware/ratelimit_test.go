package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllow(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("a") {
			t.Fatalf("request %d denied within budget", i+1)
		}
	}
	if l.Allow("a") {
		t.Fatal("request over budget allowed")
	}
	if !l.Allow("b") {
		t.Fatal("independent key should have its own budget")
	}
}

func TestRateLimitKeysByAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewRateLimiter(1, time.Minute)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		// simulate the auth middleware having identified the caller
		if uid := c.Query("uid"); uid == "1" {
			c.Set("user_id", uint(1))
		}
		RateLimit(l)(c)
		if !c.IsAborted() {
			c.Status(http.StatusOK)
		}
	})

	do := func(uid string) int {
		req := httptest.NewRequest(http.MethodGet, "/x?uid="+uid, nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// one anonymous request exhausts the IP bucket
	if code := do(""); code != http.StatusOK {
		t.Fatalf("anonymous = %d", code)
	}
	if code := do(""); code != http.StatusTooManyRequests {
		t.Fatalf("second anonymous = %d", code)
	}
	// a signed-in caller from the same IP has a separate bucket
	if code := do("1"); code != http.StatusOK {
		t.Fatalf("signed-in from same IP = %d", code)
	}
}
