package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/internal/smartfill"
	"event-approval/pkg/log"
)

// Handler is the public interface for the smart fill HTTP delivery layer.
type Handler interface {
	Fill(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc smartfill.UseCase
}

// New creates a new HTTP handler for smart fill.
func New(l log.Logger, uc smartfill.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
