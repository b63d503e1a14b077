package middleware

import (
	"log"
	"net/http"
	"time"

	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request and reduces panics to a generic 500 body;
// internals never reach the client.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("[PANIC] %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
				response.AbortError(c, http.StatusInternalServerError, "Internal server error")
				return
			}

			status := c.Writer.Status()
			latency := time.Since(start)
			if status >= http.StatusInternalServerError {
				log.Printf("[ERROR] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			} else {
				log.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			}
		}()

		c.Next()
	}
}
