package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key the request ID is stored under.
// Other middleware read it through RequestIDFrom.
const requestIDKey = "request_id"

// maxRequestIDLen caps caller-supplied IDs so a hostile header cannot
// bloat every log line and error body of the request.
const maxRequestIDLen = 64

// RequestID tags each request with an ID for log and error correlation.
// A caller-supplied X-Request-ID is honored so the editor client can
// trace an upload through to its render; otherwise one is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestIDFrom returns the request ID set by RequestID, or "" when the
// middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
