package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
	"scheduling-intelligence/internal/model"
	pkgErrors "scheduling-intelligence/pkg/errors"
)

func (h *handler) processEventsReq(c *gin.Context) (eventsReq, model.Scope, error) {
	var req eventsReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, pkgErrors.ErrBadRequest
	}
	return req, sc, nil
}

func (h *handler) processWeekReq(c *gin.Context) (weekReq, model.Scope, error) {
	var req weekReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, pkgErrors.ErrBadRequest
	}
	return req, sc, nil
}

func (h *handler) processInvalidateReq(c *gin.Context) (invalidateReq, model.Scope, error) {
	var req invalidateReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, pkgErrors.NewHTTPError(400, "from is required")
	}
	return req, sc, nil
}
