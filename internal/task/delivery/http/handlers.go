package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/pkg/response"
)

// Events godoc
// @Summary     Agenda
// @Description Normalized events of the owner's pending tasks in [from, to], with risk flags and computed priority. Served from the calendar cache once a range is loaded.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner id"
// @Param       from       query  string false "YYYY-MM-DD, RFC3339 or relative (today, tomorrow, in 3 days, next monday). Default today"
// @Param       to         query  string false "Last day, inclusive. Default from + 6 days"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/schedule/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Agenda(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Events: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newEventsResp(output))
}

// Week godoc
// @Summary     Week view
// @Description Seven day buckets, Monday first, for the week containing day.
// @Tags        Schedule
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner id"
// @Param       day        query  string false "Any day of the week. Default today"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/schedule/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Week(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Week: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// Invalidate godoc
// @Summary     Invalidate cached range
// @Description Drops cached events in [from, to] so the next read reloads them. Invalidating an unloaded range is a no-op.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string        true "Owner id"
// @Param       body       body   invalidateReq true "Range"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/schedule/invalidate [POST]
func (h *handler) Invalidate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processInvalidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Invalidate(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Invalidate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
