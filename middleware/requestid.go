package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation ID on both request and
// response.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a correlation ID to each request. A caller's
// X-Request-ID is reused when present; otherwise a fresh UUID is minted. The
// ID is stored on the gin context and echoed in the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
