package middleware

import (
	"github.com/GriffinCanCode/statcalc/internal/shared/id"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request a ULID request ID. A valid ID supplied by
// the client is kept; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID, err := id.ParseRequestID(c.GetHeader(RequestIDHeader))
		if err != nil {
			reqID = id.NewRequestID()
		}

		c.Set(requestIDKey, reqID.String())
		c.Header(RequestIDHeader, reqID.String())
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" if absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
