package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type bodyCapture struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheGET serves successful GET responses from redis for the given TTL,
// keyed by the full request URI. A nil client disables caching entirely and
// redis errors fall through to the handler, so the cache can never take the
// API down with it.
func CacheGET(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "cache:" + c.Request.RequestURI
		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		defer cancel()

		if cached, err := client.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = capture
		c.Next()

		if c.Writer.Status() == http.StatusOK && capture.buf.Len() > 0 {
			client.Set(context.Background(), key, capture.buf.Bytes(), ttl)
		}
	}
}
