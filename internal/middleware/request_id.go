package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-approval/pkg/log"
)

const (
	// HeaderRequestID correlates a request across the gateway and this service.
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLen = 128
)

// RequestID tags the request context with an id that every log line of the
// request carries. A usable incoming id is kept, otherwise a new one is generated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithFields(c.Request.Context(), "request_id", id))
		c.Next()
	}
}
