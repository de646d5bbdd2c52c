package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/pkg/response"
)

// List godoc
// @Summary     List predictions
// @Description Scores the owner's pending tasks in the lookahead window for delay, day saturation, client risk, type overrun and deadline breach.
// @Tags        Predictions
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner id"
// @Param       days       query  int    false "Lookahead days (default 14, max 60)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/predictions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Predict(ctx, sc, req.toInput(h.lookaheadDays))
	if err != nil {
		h.l.Errorf(ctx, "prediction.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}
