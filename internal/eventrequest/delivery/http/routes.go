package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ers := rg.Group("/event-requests", mw.Auth())
	{
		ers.POST("", h.Create)
		ers.GET("", h.List)
		ers.GET("/:id", h.Detail)
		ers.PUT("/:id", h.Update)
		ers.DELETE("/:id", h.Delete)
		ers.PUT("/:id/approvals", h.Decide)
		ers.GET("/:id/ics", h.ExportICS)
	}
}
