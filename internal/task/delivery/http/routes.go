package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
)

// RegisterRoutes maps the schedule endpoints. Every route needs an owner scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule", mw.Scope())
	{
		schedule.GET("/events", h.Events)
		schedule.GET("/week", h.Week)
		schedule.POST("/invalidate", h.Invalidate)
	}
}
