package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-approval/pkg/response"
)

// Create godoc
// @Summary     Create an event request
// @Description Converts the submitted form to canonical times and stores a new event request owned by the caller.
// @Tags        EventRequests
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       body      body   createReq true "Event request form"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List event requests
// @Description Returns the event requests the caller owns or is asked to approve, optionally filtered by approval status.
// @Tags        EventRequests
// @Produce     json
// @Param       X-User-ID header string true  "Caller user id"
// @Param       approval_status query string false "pending, approved, rejected or no_approvals"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event request detail
// @Description Returns one event request with its approval summary and the form used to edit it.
// @Tags        EventRequests
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       id        path   string true "Event request ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an event request
// @Description Replaces an event request with a full form. Only the owner may edit. Decisions of approvers who stay on the list are kept.
// @Tags        EventRequests
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       id        path   string    true "Event request ID"
// @Param       body      body   updateReq true "Event request form"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an event request
// @Description Permanently removes an event request owned by the caller.
// @Tags        EventRequests
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       id        path   string true "Event request ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Decide godoc
// @Summary     Record an approval decision
// @Description Sets the caller's decision on an event request they were asked to approve.
// @Tags        EventRequests
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       id        path   string    true "Event request ID"
// @Param       body      body   decideReq true "Decision: pending, approved or rejected"
// @Success     200 {object} decideResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/{id}/approvals [PUT]
func (h *handler) Decide(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processDecideReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Decide(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Decide: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDecideResp(output))
}

// ExportICS godoc
// @Summary     Export an event request as iCalendar
// @Description Returns a single-event .ics file. Approved requests are CONFIRMED, all others TENTATIVE.
// @Tags        EventRequests
// @Produce     text/calendar
// @Param       X-User-ID header string true "Caller user id"
// @Param       id        path   string true "Event request ID"
// @Success     200 {file}   file
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/{id}/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}
