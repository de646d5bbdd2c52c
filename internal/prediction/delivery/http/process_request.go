package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
	"scheduling-intelligence/internal/model"
	pkgErrors "scheduling-intelligence/pkg/errors"
)

// processListReq binds the query and reads the owner scope.
func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, pkgErrors.NewHTTPError(400, "days must be a non-negative integer")
	}
	return req, sc, req.validate()
}
