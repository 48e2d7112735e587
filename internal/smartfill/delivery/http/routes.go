package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/internal/middleware"
)

// RegisterRoutes mounts smart fill next to the event request routes. Every call
// reaches an LLM, so callers are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, perMin int) {
	rg.POST("/event-requests/smart-fill", mw.Auth(), mw.RateLimit(perMin), h.Fill)
}
