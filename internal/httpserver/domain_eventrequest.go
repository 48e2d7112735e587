package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	erHTTP "event-approval/internal/eventrequest/delivery/http"
	erRepo "event-approval/internal/eventrequest/repository/postgre"
	erUC "event-approval/internal/eventrequest/usecase"
	"event-approval/internal/middleware"
)

// setupEventRequestDomain wires repository, use case and handler for event
// requests and registers /api/v1/event-requests.
func (srv HTTPServer) setupEventRequestDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := erRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := erUC.New(repo, srv.l, srv.zones, erUC.Config{
		Calendar:   srv.calendar,
		CalendarID: srv.calendarID,
	})

	// 3. HTTP Handler
	h := erHTTP.New(srv.l, uc)

	// 4. Routes
	erHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Event request domain registered (calendar publishing disabled)")
	} else {
		srv.l.Infof(ctx, "Event request domain registered, publishing to calendar %q", srv.calendarID)
	}
	return nil
}
