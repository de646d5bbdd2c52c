package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
)

// RegisterRoutes maps the prediction endpoints. Every route needs an owner scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	predictions := rg.Group("/predictions")
	{
		predictions.GET("", mw.Scope(), h.List)
	}
}
