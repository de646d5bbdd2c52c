package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
)

// RegisterRoutes maps the recommendation endpoints. Every route needs an owner scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	recs := rg.Group("/recommendations", mw.Scope())
	{
		recs.GET("", h.List)
		recs.POST("/apply", h.Apply)
	}
}
