package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/internal/eventrequest"
	"event-approval/pkg/log"
)

// Handler is the public interface for the event request HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Decide(c *gin.Context)
	ExportICS(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc eventrequest.UseCase
}

// New creates a new HTTP handler for the event request domain.
func New(l log.Logger, uc eventrequest.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
