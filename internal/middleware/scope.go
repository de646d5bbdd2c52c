package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/pkg/response"
)

const (
	DefaultOwnerHeader = "X-Owner-ID"
	scopeKey           = "scope"
)

// Scope reads the owner header into a model.Scope. Requests without it get 401.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(m.ownerHeader))
		if owner == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Scope: missing %s on %s %s", m.ownerHeader, c.Request.Method, c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{UserID: owner})
		c.Next()
	}
}

// GetScope returns the scope set by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
