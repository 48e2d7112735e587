package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"event-approval/internal/middleware"
	sfHTTP "event-approval/internal/smartfill/delivery/http"
	"event-approval/internal/smartfill/extractor"
	sfUC "event-approval/internal/smartfill/usecase"
)

// setupSmartFillDomain registers POST /api/v1/event-requests/smart-fill.
func (srv HTTPServer) setupSmartFillDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	ext := extractor.New(srv.l, srv.llm, srv.zones)
	uc := sfUC.New(srv.l, ext)
	h := sfHTTP.New(srv.l, uc)

	sfHTTP.RegisterRoutes(api, h, mw, srv.smartFillRatePerMin)

	srv.l.Infof(ctx, "Smart fill registered (%d requests/min per caller)", srv.smartFillRatePerMin)
}
