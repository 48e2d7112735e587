package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/internal/model"
	pkgErrors "event-approval/pkg/errors"
)

// processFillReq binds the smart fill body and the caller scope.
func (h *handler) processFillReq(c *gin.Context) (model.Scope, fillReq, error) {
	var req fillReq
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "smartfill.http.processFillReq: %v", err)
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}
