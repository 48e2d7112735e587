package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-approval/internal/model"
	pkgErrors "event-approval/pkg/errors"
)

// scope returns the caller scope put in place by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processID reads and validates the :id path parameter.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errInvalidID
	}
	return id, nil
}

// processCreateReq binds the create request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "eventrequest.http.processCreateReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processUpdateReq binds the update request body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "eventrequest.http.processUpdateReq: %v", err)
		return req, errInvalidBody
	}
	req.ID = id
	return req, nil
}

// processDecideReq binds the decision body plus the URI param.
func (h *handler) processDecideReq(c *gin.Context) (decideReq, error) {
	var req decideReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.ID = id
	return req, nil
}
