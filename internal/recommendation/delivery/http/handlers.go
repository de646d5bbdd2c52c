package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/pkg/response"
)

// List godoc
// @Summary     List recommendations
// @Description Ranked, advisory suggestions (reschedule, reassign, extend_time, merge, priority_change) for the lookahead window. Nothing is applied.
// @Tags        Recommendations
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner id"
// @Param       days       query  int    false "Lookahead days (default 14, max 60)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/recommendations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Recommend(ctx, sc, req.toInput(h.lookaheadDays))
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Apply godoc
// @Summary     Apply a recommendation
// @Description Writes a confirmed recommendation's suggested change to the task store, refreshes the cached agenda and queues a calendar sync.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string   true "Owner id"
// @Param       body       body   applyReq true "Recommendation to apply"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/recommendations/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.tasks.ApplyRecommendation(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.Apply: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyResp(output))
}
