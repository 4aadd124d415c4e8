package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamesales/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RateLimit(1, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of 2 allowed, third request throttled.
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitKeysOnAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		// Stand-in for optional auth resolving a token to a user.
		if c.GetHeader("X-Test-User") != "" {
			c.Set("userID", uint(42))
		}
		c.Next()
	})
	r.Use(middleware.RateLimit(1, 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(remoteAddr, user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	// The user's bucket and their IP's anonymous bucket are separate.
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", "42"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234", "42"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", ""))

	// The user carries their bucket across addresses.
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.3:1234", "42"))
}
