package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())

		var seen string
		router.GET("/", func(c *gin.Context) {
			seen = c.GetString("request_id")
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
		assert.Len(t, seen, 32) // 16 random bytes hex-encoded
	})

	t.Run("propagates the client-supplied ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "trace-abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "trace-abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("IDs are unique across requests", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		ids := make(map[string]bool)
		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
			ids[w.Header().Get("X-Request-ID")] = true
		}
		assert.Len(t, ids, 50)
	})
}

func TestTimeout(t *testing.T) {
	t.Run("sets a deadline on the request context", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(5 * time.Second))

		var deadline time.Time
		var hasDeadline bool
		router.GET("/", func(c *gin.Context) {
			deadline, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.True(t, hasDeadline)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
	})

	t.Run("context is cancelled once the timeout elapses", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(20 * time.Millisecond))

		var ctxErr error
		router.GET("/", func(c *gin.Context) {
			<-c.Request.Context().Done()
			ctxErr = c.Request.Context().Err()
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.ErrorIs(t, ctxErr, context.DeadlineExceeded)
	})
}
