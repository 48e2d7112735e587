package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"event-approval/internal/model"
	"event-approval/pkg/response"
)

// Auth resolves the caller scope from the gateway header. Authentication
// itself happens upstream.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
