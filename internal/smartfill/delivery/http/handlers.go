package http

import (
	"github.com/gin-gonic/gin"

	"event-approval/pkg/response"
)

// Fill godoc
// @Summary     Smart fill an event request form
// @Description Extracts event details from free text and merges them into the current form. Fields the user already filled are never overwritten.
// @Tags        EventRequests
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Caller user id"
// @Param       body      body   fillReq true "Free text plus the form as currently filled"
// @Success     200 {object} fillResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Extraction failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/event-requests/smart-fill [POST]
func (h *handler) Fill(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processFillReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Fill(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Fill: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFillResp(output))
}
